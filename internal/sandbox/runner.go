package sandbox

import (
	"archive/tar"
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"hirehub/internal/config"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"
	"go.uber.org/zap"
)

// Runner executes submissions through the Docker daemon.
type Runner struct {
	log    *zap.Logger
	client *client.Client
}

// NewRunner connects to the Docker daemon. An unreachable daemon returns
// ErrUnavailable; the caller decides whether that is fatal.
func NewRunner(log *zap.Logger) (*Runner, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := cli.Ping(ctx); err != nil {
		cli.Close()
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return &Runner{log: log, client: cli}, nil
}

// Close releases the Docker client.
func (r *Runner) Close() error {
	return r.client.Close()
}

// Run executes the code in a fresh container for its language and returns
// the captured output. The container has no network access and is removed
// when the run finishes, times out, or fails.
func (r *Runner) Run(ctx context.Context, langName, code string) (*RunResult, error) {
	lang, err := LookupLanguage(langName)
	if err != nil {
		return nil, err
	}

	timeout := 10 * time.Second
	memoryMB := 128
	if config.Conf != nil {
		if config.Conf.Sandbox.TimeoutSeconds > 0 {
			timeout = time.Duration(config.Conf.Sandbox.TimeoutSeconds) * time.Second
		}
		if config.Conf.Sandbox.MemoryMB > 0 {
			memoryMB = config.Conf.Sandbox.MemoryMB
		}
	}

	if err := r.ensureImage(ctx, lang.Image); err != nil {
		return nil, fmt.Errorf("ensure image: %w", err)
	}

	containerCfg := &container.Config{
		Image:           lang.Image,
		Cmd:             lang.Command,
		WorkingDir:      "/workspace",
		NetworkDisabled: true,
		Tty:             false,
		Labels: map[string]string{
			"hirehub.sandbox": "true",
			"hirehub.lang":    lang.Name,
		},
	}
	hostCfg := &container.HostConfig{
		Resources: container.Resources{
			Memory:   int64(memoryMB) * 1024 * 1024,
			NanoCPUs: 1e9 / 2, // half a CPU
		},
	}

	resp, err := r.client.ContainerCreate(ctx, containerCfg, hostCfg, nil, nil, "")
	if err != nil {
		return nil, fmt.Errorf("create container: %w", err)
	}
	defer func() {
		if err := r.client.ContainerRemove(context.Background(), resp.ID, container.RemoveOptions{Force: true}); err != nil {
			r.log.Warn("Failed to remove sandbox container", zap.String("container", resp.ID), zap.Error(err))
		}
	}()

	if err := r.copyCode(ctx, resp.ID, lang.FileName, code); err != nil {
		return nil, fmt.Errorf("copy code: %w", err)
	}

	start := time.Now()
	if err := r.client.ContainerStart(ctx, resp.ID, container.StartOptions{}); err != nil {
		return nil, fmt.Errorf("start container: %w", err)
	}

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result := &RunResult{}
	statusCh, errCh := r.client.ContainerWait(runCtx, resp.ID, container.WaitConditionNotRunning)
	select {
	case status := <-statusCh:
		result.ExitCode = int(status.StatusCode)
	case err := <-errCh:
		if runCtx.Err() != nil {
			result.TimedOut = true
			result.ExitCode = -1
		} else {
			return nil, fmt.Errorf("wait for container: %w", err)
		}
	}
	result.Duration = time.Since(start)

	stdout, stderr, err := r.collectLogs(ctx, resp.ID)
	if err != nil {
		r.log.Warn("Failed to collect sandbox output", zap.String("container", resp.ID), zap.Error(err))
	}
	result.Stdout = stdout
	result.Stderr = stderr

	return result, nil
}

func (r *Runner) ensureImage(ctx context.Context, ref string) error {
	if _, err := r.client.ImageInspect(ctx, ref); err == nil {
		return nil
	}
	reader, err := r.client.ImagePull(ctx, ref, image.PullOptions{})
	if err != nil {
		return err
	}
	defer reader.Close()
	// Drain the pull progress stream to completion.
	_, err = io.Copy(io.Discard, reader)
	return err
}

func (r *Runner) copyCode(ctx context.Context, containerID, fileName, code string) error {
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	header := &tar.Header{
		Name: fileName,
		Mode: 0644,
		Size: int64(len(code)),
	}
	if err := tw.WriteHeader(header); err != nil {
		return fmt.Errorf("write tar header: %w", err)
	}
	if _, err := tw.Write([]byte(code)); err != nil {
		return fmt.Errorf("write tar content: %w", err)
	}
	if err := tw.Close(); err != nil {
		return fmt.Errorf("close tar: %w", err)
	}
	return r.client.CopyToContainer(ctx, containerID, "/workspace", &buf, container.CopyToContainerOptions{})
}

func (r *Runner) collectLogs(ctx context.Context, containerID string) (string, string, error) {
	logs, err := r.client.ContainerLogs(ctx, containerID, container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
	})
	if err != nil {
		return "", "", err
	}
	defer logs.Close()

	var stdout, stderr bytes.Buffer
	if _, err := stdcopy.StdCopy(&stdout, &stderr, logs); err != nil {
		return "", "", err
	}
	return stdout.String(), stderr.String(), nil
}
