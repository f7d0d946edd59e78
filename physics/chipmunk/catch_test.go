package chipmunk

import (
	"testing"

	"github.com/milk9111/sugarpop/config"
	"github.com/milk9111/sugarpop/entity"
	"github.com/milk9111/sugarpop/physics"
)

func defaultGrain(cfg config.Config) entity.GrainOptions {
	g := cfg.Grain
	return entity.GrainOptions{
		Size:     g.Size,
		Material: physics.Material{Density: g.Density, Friction: g.Friction, Elasticity: g.Elasticity},
	}
}

func TestBucketCatchesFallingGrains(t *testing.T) {
	cfg := config.Default()
	proj := physics.NewProjection(cfg.Physics.Scale, float64(cfg.Window.Height))

	for _, spoutY := range []float64{40, 300, 450} {
		w := New(Options{Gravity: cfg.Physics.Gravity})
		bucket := entity.NewBucket(w, proj, 720, 600, 110, 80, 5, entity.BucketOptions{
			WallThickness: cfg.Bucket.WallThickness,
			Friction:      cfg.Bucket.Friction,
		})
		var grains []*entity.SugarGrain
		for i := 0; i < 5; i++ {
			grains = append(grains, entity.NewSugarGrain(w, proj, 712+float64(i)*4, spoutY, i, defaultGrain(cfg)))
		}
		for i := 0; i < 600; i++ {
			w.Step(cfg.MaxTimeStep())
		}

		bucket.ResetCount()
		for _, g := range grains {
			bucket.Collect(g)
		}
		if bucket.Count() != 5 {
			pos, _ := grains[0].Position()
			t.Fatalf("spout y=%v: %d/5 grains in bucket, first grain at %v", spoutY, bucket.Count(), pos)
		}
	}
}

func TestThinSegmentHoldsFallingGrain(t *testing.T) {
	cfg := config.Default()
	proj := physics.NewProjection(cfg.Physics.Scale, float64(cfg.Window.Height))

	for _, lineY := range []float64{200, 500, 780} {
		w := New(Options{Gravity: cfg.Physics.Gravity})
		entity.NewStaticSegment(w, proj, 600, lineY, 800, lineY, cfg.Line.Thickness,
			physics.Material{Friction: cfg.Line.Friction, Elasticity: cfg.Line.Elasticity}, entity.SegmentStyle{})
		grain := entity.NewSugarGrain(w, proj, 700, 40, 0, defaultGrain(cfg))
		for i := 0; i < 600; i++ {
			w.Step(cfg.MaxTimeStep())
		}

		_, y, ok := grain.ScreenPosition()
		if !ok || y > lineY || y < lineY-20 {
			t.Fatalf("line y=%v: grain ended at y=%v", lineY, y)
		}
	}
}
