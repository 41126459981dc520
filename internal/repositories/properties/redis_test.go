package properties_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-content/internal/entities"
	"github.com/KirkDiggler/rpg-content/internal/errors"
	"github.com/KirkDiggler/rpg-content/internal/repositories/properties"
	"github.com/KirkDiggler/rpg-content/internal/testutils"
)

type RedisPropertiesTestSuite struct {
	suite.Suite
	ctx  context.Context
	mr   *miniredis.Miniredis
	repo properties.CacheRepository
}

func (s *RedisPropertiesTestSuite) SetupTest() {
	s.ctx = context.Background()

	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr

	repo, err := properties.NewRedis(&properties.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisPropertiesTestSuite) TestNewRedis() {
	testCases := []struct {
		name   string
		config *properties.RedisConfig
		errMsg string
	}{
		{
			name:   "error with nil config",
			config: nil,
			errMsg: "config cannot be nil",
		},
		{
			name:   "error with nil client",
			config: &properties.RedisConfig{},
			errMsg: "client cannot be nil",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := properties.NewRedis(tc.config)
			s.Require().Error(err)
			s.Contains(err.Error(), tc.errMsg)
			s.Nil(repo)
		})
	}
}

func (s *RedisPropertiesTestSuite) TestStoreAndFind() {
	out, err := s.repo.Store(s.ctx, properties.StoreInput{
		Properties: []*entities.Property{
			{ID: "1", Name: "Bleed", Tooltip: []string{"Take damage."}},
			{ID: "2", Name: "Burn", Description: "Hot."},
			{ID: "3", Name: "Bleed", Description: "Shadowed copy"},
			{ID: "4"},
		},
	})
	s.Require().NoError(err)
	s.Equal(2, out.Stored)
	s.Require().Len(out.Shadowed, 1)
	s.Equal("3", out.Shadowed[0].ID)

	s.True(s.mr.Exists(properties.GetKey("Bleed")))
	s.True(s.mr.Exists(properties.GetKey("Burn")))

	found, err := s.repo.FindByName(s.ctx, properties.FindByNameInput{Name: "Bleed"})
	s.Require().NoError(err)
	s.Equal("1", found.Property.ID)
	s.Equal([]string{"Take damage."}, found.Property.Tooltip)
}

func (s *RedisPropertiesTestSuite) TestStoreRemovesStaleNames() {
	_, err := s.repo.Store(s.ctx, properties.StoreInput{
		Properties: []*entities.Property{{Name: "Bleed"}, {Name: "Burn"}},
	})
	s.Require().NoError(err)

	_, err = s.repo.Store(s.ctx, properties.StoreInput{
		Properties: []*entities.Property{{Name: "Burn"}},
	})
	s.Require().NoError(err)

	s.False(s.mr.Exists(properties.GetKey("Bleed")))
	_, err = s.repo.FindByName(s.ctx, properties.FindByNameInput{Name: "Bleed"})
	s.True(errors.IsNotFound(err))

	members, err := s.mr.Members("property:names")
	s.Require().NoError(err)
	s.Equal([]string{"Burn"}, members)
}

func (s *RedisPropertiesTestSuite) TestFindByNameErrors() {
	_, err := s.repo.FindByName(s.ctx, properties.FindByNameInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.FindByName(s.ctx, properties.FindByNameInput{Name: "Missing"})
	s.True(errors.IsNotFound(err))

	s.Require().NoError(s.mr.Set(properties.GetKey("Corrupt"), "{not json"))
	_, err = s.repo.FindByName(s.ctx, properties.FindByNameInput{Name: "Corrupt"})
	s.True(errors.IsDataLoss(err))
}

func (s *RedisPropertiesTestSuite) TestFindByNameServerDown() {
	s.mr.Close()

	_, err := s.repo.FindByName(s.ctx, properties.FindByNameInput{Name: "Bleed"})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
	s.False(errors.IsNotFound(err))
}

func TestRedisPropertiesSuite(t *testing.T) {
	suite.Run(t, new(RedisPropertiesTestSuite))
}
