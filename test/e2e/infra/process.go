package infra

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
)

const readyTimeout = 30 * time.Second

// ProcessInfraManager runs `forkpool serve` as a child process.
type ProcessInfraManager struct {
	binary string

	mu      sync.Mutex
	cmd     *exec.Cmd
	cfg     ServeConfig
	exited  chan struct{}
	waitErr error
}

func NewProcessInfraManager(binary string) (*ProcessInfraManager, error) {
	if _, err := os.Stat(binary); err != nil {
		return nil, fmt.Errorf("forkpool binary: %w", err)
	}
	return &ProcessInfraManager{binary: binary}, nil
}

func (p *ProcessInfraManager) StartForkpool(cfg ServeConfig) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cmd != nil {
		return "", errors.New("forkpool already running")
	}

	args := []string{"serve", "--http-port", strconv.Itoa(cfg.HTTPPort), "--workers", strconv.Itoa(cfg.Workers)}
	if cfg.DataFolder != "" {
		args = append(args, "--data-folder", cfg.DataFolder)
	}
	if cfg.LogLevel != "" {
		args = append(args, "--log-level", cfg.LogLevel)
	}

	cmd := exec.Command(p.binary, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("failed to start forkpool: %w", err)
	}

	exited := make(chan struct{})
	go func() {
		p.waitErr = cmd.Wait()
		close(exited)
	}()

	p.cmd, p.cfg, p.exited = cmd, cfg, exited

	url := fmt.Sprintf("http://127.0.0.1:%d", cfg.HTTPPort)
	if err := waitReady(url, exited); err != nil {
		_ = p.stopLocked()
		return "", err
	}

	zap.S().Infow("forkpool started", "pid", cmd.Process.Pid, "url", url)
	return url, nil
}

func (p *ProcessInfraManager) StopForkpool() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stopLocked()
}

func (p *ProcessInfraManager) RestartForkpool() error {
	p.mu.Lock()
	cfg := p.cfg
	if err := p.stopLocked(); err != nil {
		p.mu.Unlock()
		return err
	}
	p.mu.Unlock()

	_, err := p.StartForkpool(cfg)
	return err
}

func (p *ProcessInfraManager) stopLocked() error {
	if p.cmd == nil {
		return nil
	}
	defer func() { p.cmd = nil }()

	_ = p.cmd.Process.Signal(syscall.SIGTERM)
	select {
	case <-p.exited:
		zap.S().Infow("forkpool stopped", "exit", p.waitErr)
		return nil
	case <-time.After(15 * time.Second):
		_ = p.cmd.Process.Kill()
		<-p.exited
		return errors.New("forkpool did not stop on SIGTERM")
	}
}

// waitReady polls /metrics until the server answers or the process exits.
func waitReady(url string, exited <-chan struct{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), readyTimeout)
	defer cancel()

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		select {
		case <-exited:
			return struct{}{}, backoff.Permanent(errors.New("forkpool exited before it was ready"))
		default:
		}

		resp, err := http.Get(url + "/metrics")
		if err != nil {
			return struct{}{}, err
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return struct{}{}, fmt.Errorf("metrics returned %s", resp.Status)
		}
		return struct{}{}, nil
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxElapsedTime(readyTimeout))
	return err
}
