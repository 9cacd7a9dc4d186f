package config

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/df07/go-bvh-pathtracer/pkg/scene"
)

func validatePositive(field string, value float64) []ValidationError {
	if value <= 0 {
		return []ValidationError{{
			Field:   field,
			Message: "must be positive",
		}}
	}
	return nil
}

func validateNonNegative(field string, value float64) []ValidationError {
	if value < 0 {
		return []ValidationError{{
			Field:   field,
			Message: "must be non-negative",
		}}
	}
	return nil
}

func validateNonZeroVector(field string, vec [3]float64) []ValidationError {
	if vec[0] == 0 && vec[1] == 0 && vec[2] == 0 {
		return []ValidationError{{
			Field:   field,
			Message: "must not be the zero vector",
		}}
	}
	return nil
}

// ValidationError represents a structured validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FormatValidationErrors renders errors as an indented list
func FormatValidationErrors(errs []ValidationError) string {
	if len(errs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Validation Errors:\n")
	for _, err := range errs {
		b.WriteString(fmt.Sprintf("  - %s: %s\n", err.Field, err.Message))
	}
	return b.String()
}

// Validate performs validation on the entire configuration
func (c *RenderConfig) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, c.Scene.Validate()...)
	errors = append(errors, c.Camera.Validate()...)
	errors = append(errors, c.Sampling.Validate()...)
	errors = append(errors, c.Render.Validate()...)
	errors = append(errors, c.Output.Validate()...)
	return errors
}

func (s *Scene) Validate() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(scene.Names(), s.Name) {
		errors = append(errors, ValidationError{
			Field:   "scene.name",
			Message: fmt.Sprintf("unknown scene %q (available: %s)", s.Name, strings.Join(scene.Names(), ", ")),
		})
	}

	switch s.Integrator {
	case "", "path", "phong":
	default:
		errors = append(errors, ValidationError{
			Field:   "scene.integrator",
			Message: fmt.Sprintf("unknown integrator %q (want path or phong)", s.Integrator),
		})
	}

	errors = append(errors, validateNonNegative("scene.sphere_count", float64(s.SphereCount))...)
	errors = append(errors, validateNonNegative("scene.mesh.scale", s.Mesh.Scale)...)

	for i, stop := range s.Background {
		for _, v := range stop {
			if v < 0 {
				errors = append(errors, ValidationError{
					Field:   fmt.Sprintf("scene.background[%d]", i),
					Message: "color components must be non-negative",
				})
				break
			}
		}
	}

	if s.Name == "mesh" && s.Mesh.Path == "" {
		errors = append(errors, ValidationError{
			Field:   "scene.mesh.path",
			Message: "required by the mesh scene",
		})
	}

	return errors
}

func (c *Camera) Validate() []ValidationError {
	var errors []ValidationError
	if c.ViewDir != nil {
		errors = append(errors, validateNonZeroVector("camera.view_dir", *c.ViewDir)...)
	}
	if c.Up != nil {
		errors = append(errors, validateNonZeroVector("camera.up", *c.Up)...)
	}
	errors = append(errors, validateNonNegative("camera.distance", c.Distance)...)
	errors = append(errors, validateNonNegative("camera.viewport_width", c.ViewportWidth)...)
	return errors
}

func (s *Sampling) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, validateNonNegative("sampling.width", float64(s.Width))...)
	errors = append(errors, validateNonNegative("sampling.height", float64(s.Height))...)
	errors = append(errors, validateNonNegative("sampling.max_depth", float64(s.MaxDepth))...)

	if s.FineGrid != nil && *s.FineGrid != 0 {
		n := *s.FineGrid
		root := int(math.Round(math.Sqrt(float64(n))))
		if n < 0 || root*root != n {
			errors = append(errors, ValidationError{
				Field:   "sampling.fine_grid",
				Message: "must be 0 or a perfect square",
			})
		}
	}
	return errors
}

func (r *Render) Validate() []ValidationError {
	return validateNonNegative("render.workers", float64(r.Workers))
}

func (o *Output) Validate() []ValidationError {
	var errors []ValidationError
	if o.PPM == "" && o.PNG == "" {
		errors = append(errors, ValidationError{
			Field:   "output",
			Message: "at least one of ppm or png must be set",
		})
	}
	if o.Gamma != 0 {
		errors = append(errors, validatePositive("output.gamma", o.Gamma)...)
	}
	return errors
}
