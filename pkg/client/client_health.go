package client

import (
	"context"
	"net/http"
)

type HealthService struct {
	Options []RequestOption
}

func NewHealthService(opts ...RequestOption) HealthService {
	return HealthService{
		Options: opts,
	}
}

// Check reports whether the server answers its health probe.
func (r *HealthService) Check(ctx context.Context, opts ...RequestOption) error {
	cfg := newRequestConfig(append(r.Options, opts...)...)

	resp, err := cfg.do(ctx, http.MethodGet, "/health", nil)

	if err != nil {
		return err
	}

	resp.Body.Close()

	return nil
}
