// Package errors provides structured errors for the content pipeline.
//
// Errors carry a code, a message, an optional cause and free-form metadata:
//
//	err := errors.NotFoundf("property %q not found", name).
//	    WithMeta("root", root)
//
// Wrapping keeps the code of a structured cause and defaults to Internal
// for anything else:
//
//	data, err := os.ReadFile(path)
//	if err != nil {
//	    return errors.Wrapf(err, "failed to read %s", path)
//	}
//
// Callers branch on codes rather than on message text:
//
//	if errors.IsNotFound(err) {
//	    continue // unresolved property references are dropped
//	}
//
// Configs validate themselves with a ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Root == "" {
//	    vb.RequiredField("Root")
//	}
//	return vb.Build()
//
// # Layer guidelines
//
// Repositories return NotFound for missing records and wrap storage
// failures. Orchestrators validate their inputs with InvalidArgument and
// skip, rather than abort on, bad data files. The CLI maps the final code to
// a process exit status with Code.ExitCode.
package errors
