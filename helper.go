package envprobe

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

//go:embed scripts/helper.py
var helperSource string

var helperDecoder Decoder = MsgpackDecoder{}

// helperWaitDelay bounds how long Wait keeps draining stderr after the helper
// exits or is killed. A grandchild holding stderr open would otherwise block.
const helperWaitDelay = 2 * time.Second

type describeReply struct {
	Executable string   `msgpack:"executable"`
	Version    string   `msgpack:"version"`
	Path       []string `msgpack:"path"`
	PathRepr   string   `msgpack:"path_repr"`
}

type importReply struct {
	OK        bool   `msgpack:"ok"`
	Module    string `msgpack:"module"`
	Version   string `msgpack:"version"`
	File      string `msgpack:"file"`
	Exception string `msgpack:"exception"`
	Message   string `msgpack:"message"`
}

// ModuleHandle is what a successful import hands back to the prober.
type ModuleHandle struct {
	Module string

	// Version is the top-level package's __version__, empty when it has none.
	Version string

	// File is the imported module's __file__.
	File string
}

// runHelper runs the embedded helper with args and decodes its single reply
// frame into reply.
func (p *PythonInterpreter) runHelper(ctx context.Context, reply any, args ...string) error {
	start := time.Now()
	cmd := exec.CommandContext(ctx, p.Path, append([]string{"-c", helperSource}, args...)...)
	configureCommand(cmd)
	cmd.WaitDelay = helperWaitDelay

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start helper: %w", err)
	}

	var frames FrameReader = NewMsgpackFrameReader(stdout)

	// Killing the helper does not close stdout while a grandchild still holds
	// it, so cancellation closes the read end to unblock Receive.
	received := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			frames.Close()
		case <-received:
		}
	}()

	frame, recvErr := frames.Receive()
	close(received)
	if recvErr != nil {
		frames.Close()
	}
	waitErr := cmd.Wait()

	zerolog.Ctx(ctx).Debug().
		Strs("args", args).
		Dur("elapsed", time.Since(start)).
		Int("frame_bytes", len(frame)).
		Msg("helper finished")

	if recvErr != nil {
		if waitErr != nil {
			return fmt.Errorf("helper failed: %w%s", waitErr, stderrSuffix(&stderr))
		}
		return fmt.Errorf("read helper reply: %w%s", recvErr, stderrSuffix(&stderr))
	}
	if waitErr != nil {
		return fmt.Errorf("helper exited after replying: %w%s", waitErr, stderrSuffix(&stderr))
	}

	if err := helperDecoder.Unmarshal(frame, reply); err != nil {
		return fmt.Errorf("decode helper reply: %w", err)
	}
	return nil
}

func stderrSuffix(stderr *bytes.Buffer) string {
	s := strings.TrimSpace(stderr.String())
	if s == "" {
		return ""
	}
	return ", stderr: " + s
}
