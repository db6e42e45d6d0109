package spawn

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"

	"go.uber.org/zap"
)

var ErrEmptyCommand = errors.New("empty command")

// Shell starts commands through a shell and does not wait for them.
type Shell struct {
	Path string
	log  *zap.SugaredLogger
}

func NewShell(log *zap.SugaredLogger) *Shell {
	return &Shell{log: log}
}

func (s *Shell) command(command string, env map[string]string) *exec.Cmd {
	path := s.Path
	if path == "" {
		path = "/bin/sh"
	}

	cmd := exec.Command(path, "-c", command)
	cmd.Env = mergeEnv(os.Environ(), env)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd
}

// Spawn starts command with env added to the current environment. The
// process is reaped in the background.
func (s *Shell) Spawn(command string, env map[string]string) error {
	if strings.TrimSpace(command) == "" {
		return ErrEmptyCommand
	}

	cmd := s.command(command, env)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %q: %w", command, err)
	}
	s.log.Debugw("spawned", "command", command, "pid", cmd.Process.Pid)

	go func() {
		err := cmd.Wait()
		if err != nil {
			s.log.Debugw("spawned command exited", "command", command, "error", err)
		}
	}()

	return nil
}

func mergeEnv(base []string, extra map[string]string) []string {
	out := make([]string, 0, len(base)+len(extra))
	for _, kv := range base {
		key, _, _ := strings.Cut(kv, "=")
		if _, ok := extra[key]; ok {
			continue
		}
		out = append(out, kv)
	}

	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out = append(out, k+"="+extra[k])
	}
	return out
}
