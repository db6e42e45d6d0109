package backend

import (
	"context"
	"image"
	"strings"
	"testing"

	"codeberg.org/miketth/hyprinput/pkg/headless"
	"codeberg.org/miketth/hyprinput/pkg/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseEvent(t *testing.T) {
	tests := []struct {
		line string
		want input.Event
	}{
		{
			"deviceadded>>kbd0,keyboard,AT Translated Set 2 keyboard",
			input.DeviceAdded{Device: input.Device{ID: "kbd0", Name: "AT Translated Set 2 keyboard", Capabilities: []input.Capability{input.CapabilityKeyboard}}},
		},
		{
			"deviceadded>>combo,keyboard+pointer,Logitech, Inc.",
			input.DeviceAdded{Device: input.Device{ID: "combo", Name: "Logitech, Inc.", Capabilities: []input.Capability{input.CapabilityKeyboard, input.CapabilityPointer}}},
		},
		{
			"deviceremoved>>kbd0",
			input.DeviceRemoved{Device: input.Device{ID: "kbd0"}},
		},
		{
			"key>>kbd0,100,16,pressed",
			input.KeyboardKey{Device: "kbd0", Time: 100, Keycode: 16, State: input.KeyPressed},
		},
		{
			"motion>>mouse,5,1.5,-2",
			input.PointerMotion{Device: "mouse", Time: 5, Delta: input.Point{X: 1.5, Y: -2}},
		},
		{
			"motionabs>>tablet,5,0.5,0.25",
			input.PointerMotionAbsolute{Device: "tablet", Time: 5, X: 0.5, Y: 0.25},
		},
		{
			"button>>mouse,7,0x110,released",
			input.PointerButton{Device: "mouse", Time: 7, Button: 0x110, State: input.ButtonReleased},
		},
		{
			"axis>>mouse,9,wheel,-,-,-,1",
			input.PointerAxis{Device: "mouse", Time: 9, Source: input.AxisSourceWheel, Vertical: input.AxisValue{Discrete: 1, HasDiscrete: true}},
		},
		{
			"axis>>pad,9,finger,0,4.5,-,-",
			input.PointerAxis{Device: "pad", Time: 9, Source: input.AxisSourceFinger,
				Horizontal: input.AxisValue{HasAmount: true},
				Vertical:   input.AxisValue{Amount: 4.5, HasAmount: true}},
		},
		{
			"touchdown>>screen,1,2,3",
			Unsupported{Kind: "touchdown", Device: "screen"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseEvent(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEvent_Malformed(t *testing.T) {
	for _, line := range []string{
		"no separator",
		"key>>kbd0,100,16",
		"key>>kbd0,100,16,held",
		"key>>kbd0,abc,16,pressed",
		"motion>>mouse,1,x,2",
		"axis>>mouse,1,sideways,-,-,-,-",
		"deviceadded>>kbd0,joystick,Pad",
		"deviceremoved>>",
	} {
		_, err := ParseEvent(line)
		assert.Error(t, err, line)
	}
}

type recordingProcessor struct {
	events []input.Event
	stopAt int
}

func (p *recordingProcessor) Process(ev input.Event) {
	p.events = append(p.events, ev)
}

func (p *recordingProcessor) ShouldStop() bool {
	return p.stopAt > 0 && len(p.events) >= p.stopAt
}

func TestProcessLines(t *testing.T) {
	stream := strings.Join([]string{
		"# replay",
		"deviceadded>>kbd0,keyboard,Keyboard",
		"",
		"garbage",
		"key>>kbd0,1,16,pressed",
		"key>>kbd0,2,16,released",
	}, "\n")

	proc := &recordingProcessor{}
	err := ProcessLines(context.Background(), NewClient(strings.NewReader(stream)), proc, zap.NewNop().Sugar())
	require.NoError(t, err)

	require.Len(t, proc.events, 3)
	assert.IsType(t, input.DeviceAdded{}, proc.events[0])
	assert.Equal(t, input.KeyReleased, proc.events[2].(input.KeyboardKey).State)
}

func TestProcessLines_KeyFromPointerDevice(t *testing.T) {
	log := zap.NewNop().Sugar()
	rec := &headless.Recorder{}
	output := &input.Output{Name: "HEADLESS-1", Geometry: image.Rect(0, 0, 800, 600)}
	dispatcher := input.NewDispatcher(input.Options{
		Shell: headless.NewShell(log, output),
		Sink:  rec,
	}, log)
	dispatcher.AddSeat("seat0")

	stream := "deviceadded>>ptr,pointer,mouse\nkey>>ptr,1,30,pressed\n"
	require.NotPanics(t, func() {
		err := ProcessLines(context.Background(), NewClient(strings.NewReader(stream)), dispatcher, log)
		require.NoError(t, err)
	})
	assert.Empty(t, rec.Events)
}

func TestProcessLines_StopsWhenAsked(t *testing.T) {
	stream := "key>>kbd0,1,16,pressed\nkey>>kbd0,2,16,released\n"

	proc := &recordingProcessor{stopAt: 1}
	err := ProcessLines(context.Background(), NewClient(strings.NewReader(stream)), proc, zap.NewNop().Sugar())
	require.NoError(t, err)
	assert.Len(t, proc.events, 1)
}

func TestProcessLines_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	blocking := NewClient(blockingReader{})
	err := ProcessLines(ctx, blocking, &recordingProcessor{}, zap.NewNop().Sugar())
	assert.ErrorIs(t, err, context.Canceled)
}

type blockingReader struct{}

func (blockingReader) Read([]byte) (int, error) {
	select {}
}

func TestSocketPath(t *testing.T) {
	path, err := SocketPath("wayland-1")
	if err != nil {
		assert.ErrorIs(t, err, ErrNoRuntimeDir)
		return
	}
	assert.True(t, strings.HasSuffix(path, "hyprinput/wayland-1.events.sock"))
}
