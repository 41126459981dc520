package properties

import (
	"context"
	"encoding/json"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-content/internal/entities"
	"github.com/KirkDiggler/rpg-content/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-content/internal/redis"
)

const (
	// Key pattern: property:name:{name}
	propertyKeyPrefix = "property:name:"
	// Set of every name currently indexed, used to clear stale keys on Store
	propertyNamesKey = "property:names"
)

// RedisConfig contains configuration for the Redis property index
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedis creates a property index stored in Redis, shared between runs
// and machines
func NewRedis(cfg *RedisConfig) (CacheRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

var _ CacheRepository = (*redisRepository)(nil)

func (r *redisRepository) FindByName(ctx context.Context, input FindByNameInput) (*FindByNameOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	result, err := r.client.Get(ctx, GetKey(input.Name)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("property %q not found", input.Name)
		}
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to get property %q", input.Name)
	}

	var prop entities.Property
	if err := json.Unmarshal([]byte(result), &prop); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "failed to unmarshal property %q", input.Name)
	}

	return &FindByNameOutput{Property: &prop}, nil
}

func (r *redisRepository) Store(ctx context.Context, input StoreInput) (*StoreOutput, error) {
	byName, shadowed := indexByName(input.Properties)

	stale, err := r.client.SMembers(ctx, propertyNamesKey).Result()
	if err != nil && err != redis.Nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read indexed property names")
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	pipe := r.client.TxPipeline()

	for _, name := range stale {
		if _, keep := byName[name]; !keep {
			pipe.Del(ctx, GetKey(name))
		}
	}
	pipe.Del(ctx, propertyNamesKey)

	for _, name := range names {
		data, err := json.Marshal(byName[name])
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal property %q", name)
		}
		pipe.Set(ctx, GetKey(name), data, 0)
	}
	if len(names) > 0 {
		members := make([]any, len(names))
		for i, name := range names {
			members[i] = name
		}
		pipe.SAdd(ctx, propertyNamesKey, members...)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store property index")
	}

	return &StoreOutput{
		Stored:   len(names),
		Shadowed: shadowed,
	}, nil
}

// GetKey returns the Redis key for a property name
func GetKey(name string) string {
	return propertyKeyPrefix + name
}
