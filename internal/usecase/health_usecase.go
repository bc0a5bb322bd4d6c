package usecase

import (
	"context"
	"time"
)

// PingFunc reports whether a dependency is reachable
type PingFunc func(ctx context.Context) error

type HealthUsecase interface {
	Check(ctx context.Context) (map[string]string, bool)
}

type healthUsecase struct {
	db    PingFunc
	redis PingFunc
}

// NewHealthUsecase takes the database ping and an optional redis ping (nil when disabled).
func NewHealthUsecase(db, redis PingFunc) HealthUsecase {
	return &healthUsecase{db: db, redis: redis}
}

// Check returns per-dependency status and whether the service is healthy.
// Redis is optional; only the database decides health.
func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	status := map[string]string{
		"status":   "ok",
		"database": "up",
		"redis":    "disabled",
	}
	healthy := true

	if err := u.db(ctx); err != nil {
		status["database"] = "down"
		status["status"] = "degraded"
		healthy = false
	}
	if u.redis != nil {
		if err := u.redis(ctx); err != nil {
			status["redis"] = "down"
		} else {
			status["redis"] = "up"
		}
	}
	return status, healthy
}
