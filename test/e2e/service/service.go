package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	v1 "github.com/kubev2v/forkpool/api/v1"
	"github.com/kubev2v/forkpool/pkg/client"
)

const requestTimeout = 2 * time.Minute

// ForkpoolSvc wraps the API client with the defaults the e2e specs need.
type ForkpoolSvc struct {
	api *client.Client
}

// NewForkpoolService initializes the service against baseURL.
func NewForkpoolService(baseURL string) (*ForkpoolSvc, error) {
	zap.S().Infow("Initializing ForkpoolService...", "url", baseURL)
	api, err := client.NewClient(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize forkpool service API: %w", err)
	}
	return &ForkpoolSvc{api: api}, nil
}

func (s *ForkpoolSvc) Pool() (*v1.PoolStatus, error) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	return s.api.GetPool(ctx)
}

func (s *ForkpoolSvc) Run(workload string, size int) (*v1.Run, error) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	return s.api.StartRun(ctx, v1.StartRunRequest{Workload: workload, Size: size})
}

func (s *ForkpoolSvc) RunAsync(workload string, size int) (*v1.BenchStatus, error) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	return s.api.StartRunAsync(ctx, v1.StartRunRequest{Workload: workload, Size: size})
}

func (s *ForkpoolSvc) GetRun(id string) (*v1.Run, error) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	return s.api.GetRun(ctx, id)
}

func (s *ForkpoolSvc) ListRuns(workloads ...string) (*v1.RunListResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	return s.api.ListRuns(ctx, v1.ListRunsParams{Workload: workloads})
}
