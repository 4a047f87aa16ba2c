package collage

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/user/adposter/pkg/mocks"
	"github.com/user/adposter/pkg/pipeline"
	"github.com/user/adposter/pkg/ports"
)

// tileColor gives each photo index a distinct flat color so grid slots
// can be verified by sampling pixel centers.
func tileColor(i int) color.NRGBA {
	return color.NRGBA{R: uint8(40 + i*20), G: 80, B: 160, A: 255}
}

func photoPath(i int) string {
	return fmt.Sprintf("photos/photo-%d.jpg", i)
}

// newTestRig wires a stage whose renderer decodes the fixture bytes
// "photo-N" into a flat image of tileColor(N) and captures the encoded grid.
func newTestRig(t *testing.T, photos int) (*Stage, *mocks.FileSystem, *image.Image, *int) {
	t.Helper()

	fs := mocks.NewFileSystem()
	for i := 0; i < photos; i++ {
		fs.Files[photoPath(i)] = []byte(fmt.Sprintf("photo-%d", i))
	}

	var captured image.Image
	var quality int
	renderer := &mocks.Renderer{
		DecodeImageFunc: func(data []byte) (image.Image, error) {
			idx := int(data[len(data)-1] - '0')
			return imaging.New(100, 80, tileColor(idx)), nil
		},
		EncodeImageFunc: func(img image.Image, format ports.ImageFormat, q int) ([]byte, error) {
			if format != ports.FormatJPEG {
				t.Errorf("encode format = %d, want JPEG", format)
			}
			captured = img
			quality = q
			return []byte("jpeg-bytes"), nil
		},
	}

	stage := NewStage(renderer, fs, mocks.NewDebugSink(false), mocks.NewLogger())
	return stage, fs, &captured, &quality
}

func sampleCell(t *testing.T, grid image.Image, slot int) color.NRGBA {
	t.Helper()
	row := slot / 3
	col := slot % 3
	return color.NRGBAModel.Convert(grid.At(col*360+180, row*360+180)).(color.NRGBA)
}

func colorNear(a, b color.NRGBA, tol int) bool {
	diff := func(x, y uint8) int {
		d := int(x) - int(y)
		if d < 0 {
			d = -d
		}
		return d
	}
	return diff(a.R, b.R) <= tol && diff(a.G, b.G) <= tol && diff(a.B, b.B) <= tol
}

func TestExecute_NinePhotosFillDistinctSlots(t *testing.T) {
	stage, fs, captured, quality := newTestRig(t, 9)

	paths := make([]string, 9)
	for i := range paths {
		paths[i] = photoPath(i)
	}

	result, err := stage.Execute(context.Background(), pipeline.CollageInput{
		Paths:      paths,
		OutputPath: "out/collage.jpg",
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if !filepath.IsAbs(result.OutputPath) {
		t.Errorf("result path %q is not absolute", result.OutputPath)
	}
	if string(fs.Files["out/collage.jpg"]) != "jpeg-bytes" {
		t.Error("encoded collage was not written to the output path")
	}
	if len(result.PlaceholderSlots) != 0 {
		t.Errorf("unexpected placeholder slots %v", result.PlaceholderSlots)
	}
	if *quality != 90 {
		t.Errorf("quality = %d, want the default 90", *quality)
	}

	grid := *captured
	if b := grid.Bounds(); b.Dx() != 1080 || b.Dy() != 1080 {
		t.Fatalf("grid is %dx%d, want the default 1080x1080", b.Dx(), b.Dy())
	}
	for i := 0; i < 9; i++ {
		if got := sampleCell(t, grid, i); !colorNear(got, tileColor(i), 2) {
			t.Errorf("slot %d = %+v, want photo %d color %+v", i, got, i, tileColor(i))
		}
	}
}

func TestExecute_FewerPhotosRepeatCyclically(t *testing.T) {
	stage, _, captured, _ := newTestRig(t, 4)

	paths := []string{photoPath(0), photoPath(1), photoPath(2), photoPath(3)}
	if _, err := stage.Execute(context.Background(), pipeline.CollageInput{
		Paths:      paths,
		OutputPath: "collage.jpg",
	}); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	// Slot i shows photo i%4: 0 1 2 3 / 0 1 2 3 / 0.
	for i := 0; i < 9; i++ {
		want := tileColor(i % 4)
		if got := sampleCell(t, *captured, i); !colorNear(got, want, 2) {
			t.Errorf("slot %d = %+v, want photo %d color %+v", i, got, i%4, want)
		}
	}
}

func TestExecute_MoreThanNinePhotosTruncated(t *testing.T) {
	stage, fs, captured, _ := newTestRig(t, 9)
	// A tenth photo that must never be read.
	fs.ReadErrs["photos/photo-x.jpg"] = errors.New("must not be read")

	paths := make([]string, 0, 10)
	for i := 0; i < 9; i++ {
		paths = append(paths, photoPath(i))
	}
	paths = append(paths, "photos/photo-x.jpg")

	result, err := stage.Execute(context.Background(), pipeline.CollageInput{
		Paths:      paths,
		OutputPath: "collage.jpg",
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(result.PlaceholderSlots) != 0 {
		t.Errorf("tenth photo leaked into the grid: placeholders %v", result.PlaceholderSlots)
	}
	if got := sampleCell(t, *captured, 8); !colorNear(got, tileColor(8), 2) {
		t.Errorf("slot 8 = %+v, want photo 8 color", got)
	}
}

func TestExecute_NoPhotos(t *testing.T) {
	stage, fs, _, _ := newTestRig(t, 0)

	_, err := stage.Execute(context.Background(), pipeline.CollageInput{OutputPath: "collage.jpg"})
	if !errors.Is(err, pipeline.ErrNoImages) {
		t.Fatalf("err = %v, want ErrNoImages", err)
	}
	if len(fs.Files) != 0 {
		t.Error("files were written despite the empty input")
	}
}

func TestExecute_UndecodablePhotoGetsPlaceholder(t *testing.T) {
	stage, fs, captured, _ := newTestRig(t, 5)
	fs.ReadErrs[photoPath(2)] = errors.New("disk gone")

	paths := make([]string, 5)
	for i := range paths {
		paths[i] = photoPath(i)
	}

	result, err := stage.Execute(context.Background(), pipeline.CollageInput{
		Paths:      paths,
		OutputPath: "collage.jpg",
	})
	if err != nil {
		t.Fatalf("one bad photo must not fail the collage: %v", err)
	}

	// Photo 2 fills slots 2 and 7 in the cyclic schedule.
	want := []int{2, 7}
	if len(result.PlaceholderSlots) != len(want) || result.PlaceholderSlots[0] != 2 || result.PlaceholderSlots[1] != 7 {
		t.Errorf("placeholder slots = %v, want %v", result.PlaceholderSlots, want)
	}

	gray := color.NRGBA{R: 240, G: 240, B: 240, A: 255}
	for _, slot := range want {
		if got := sampleCell(t, *captured, slot); !colorNear(got, gray, 2) {
			t.Errorf("slot %d = %+v, want placeholder gray", slot, got)
		}
	}
	if got := sampleCell(t, *captured, 3); !colorNear(got, tileColor(3), 2) {
		t.Errorf("healthy slot 3 = %+v, want photo 3 color", got)
	}
}

func TestExecute_CustomCanvasAndQuality(t *testing.T) {
	stage, _, captured, quality := newTestRig(t, 1)

	_, err := stage.Execute(context.Background(), pipeline.CollageInput{
		Paths:      []string{photoPath(0)},
		OutputPath: "collage.jpg",
		Canvas:     pipeline.Dimension{Width: 720, Height: 720},
		Quality:    75,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if b := (*captured).Bounds(); b.Dx() != 720 || b.Dy() != 720 {
		t.Errorf("grid is %dx%d, want 720x720", b.Dx(), b.Dy())
	}
	if *quality != 75 {
		t.Errorf("quality = %d, want 75", *quality)
	}
}

func TestExecute_IndivisibleCanvasLeavesMargin(t *testing.T) {
	stage, _, captured, _ := newTestRig(t, 1)

	// 1000/3 = 333: tiles cover 0..998, the last pixel column and row
	// stay white.
	if _, err := stage.Execute(context.Background(), pipeline.CollageInput{
		Paths:      []string{photoPath(0)},
		OutputPath: "collage.jpg",
		Canvas:     pipeline.Dimension{Width: 1000, Height: 1000},
	}); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	grid := *captured
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	if got := color.NRGBAModel.Convert(grid.At(999, 500)).(color.NRGBA); got != white {
		t.Errorf("right margin = %+v, want white", got)
	}
	if got := color.NRGBAModel.Convert(grid.At(500, 999)).(color.NRGBA); got != white {
		t.Errorf("bottom margin = %+v, want white", got)
	}
	if got := color.NRGBAModel.Convert(grid.At(998, 500)).(color.NRGBA); !colorNear(got, tileColor(0), 2) {
		t.Errorf("last tile column = %+v, want photo color", got)
	}
}

func TestExecute_EncodeFailure(t *testing.T) {
	stage, fs, _, _ := newTestRig(t, 1)
	stage.renderer = &mocks.Renderer{
		DecodeImageFunc: func(data []byte) (image.Image, error) {
			return imaging.New(100, 80, tileColor(0)), nil
		},
		EncodeImageFunc: func(img image.Image, format ports.ImageFormat, q int) ([]byte, error) {
			return nil, errors.New("boom")
		},
	}

	_, err := stage.Execute(context.Background(), pipeline.CollageInput{
		Paths:      []string{photoPath(0)},
		OutputPath: "collage.jpg",
	})
	if err == nil {
		t.Fatal("expected encode failure to surface")
	}
	if len(fs.Files) != 1 {
		// Only the fixture photo remains; no output was written.
		t.Errorf("unexpected writes: %v", fs.Files)
	}
}

func TestExecute_CanceledContext(t *testing.T) {
	stage, _, _, _ := newTestRig(t, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := stage.Execute(ctx, pipeline.CollageInput{
		Paths:      []string{photoPath(0)},
		OutputPath: "collage.jpg",
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestExecute_SinkReceivesTiles(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.Files[photoPath(0)] = []byte("photo-0")

	sink := mocks.NewDebugSink(true)
	renderer := &mocks.Renderer{
		DecodeImageFunc: func(data []byte) (image.Image, error) {
			return imaging.New(100, 80, tileColor(0)), nil
		},
	}
	stage := NewStage(renderer, fs, sink, mocks.NewLogger())

	if _, err := stage.Execute(context.Background(), pipeline.CollageInput{
		Paths:      []string{photoPath(0)},
		OutputPath: "collage.jpg",
	}); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(sink.Tiles) != 9 {
		t.Errorf("sink received %d tiles, want 9", len(sink.Tiles))
	}
}

func TestScheduleSlots(t *testing.T) {
	got := scheduleSlots([]string{"a", "b"})
	want := []string{"a", "b", "a", "b", "a", "b", "a", "b", "a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("slots = %v, want %v", got, want)
		}
	}
}
