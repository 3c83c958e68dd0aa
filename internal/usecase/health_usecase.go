package usecase

import (
	"context"
	"errors"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

// HealthProbe reports the status of one dependency; nil error means healthy
type HealthProbe func(ctx context.Context) error

// ErrProbeDisabled marks a dependency that is not configured
var ErrProbeDisabled = errors.New("disabled")

type healthUsecase struct {
	probes map[string]HealthProbe
}

func NewHealthUsecase(probes map[string]HealthProbe) HealthUsecase {
	return &healthUsecase{probes: probes}
}

// Check runs every probe. Overall status degrades only on real failures.
func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	result := map[string]string{
		"status": "ok",
	}
	for name, probe := range u.probes {
		switch err := probe(ctx); {
		case err == nil:
			result[name] = "ok"
		case errors.Is(err, ErrProbeDisabled):
			result[name] = "disabled"
		default:
			result[name] = "unavailable"
			result["status"] = "degraded"
		}
	}
	return result
}
