package raycaster

import (
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/refraction"
	"github.com/df07/go-raycaster/pkg/scatter"
	"github.com/df07/go-raycaster/pkg/shading"
)

// MockScene returns a fixed answer and counts queries
type MockScene struct {
	hit          *core.SurfaceHit
	blocked      bool
	intersects   int
	shadowChecks int
}

func (m *MockScene) IntersectScene(ray core.Ray, wantExit bool) (core.SurfaceHit, bool) {
	m.intersects++
	if m.hit == nil {
		return core.SurfaceHit{}, false
	}
	hit := *m.hit
	hit.Ray = ray
	return hit, true
}

func (m *MockScene) CastShadowRay(ray core.Ray, maxDistance float64) bool {
	m.shadowChecks++
	return m.blocked
}

// MockShader records what it was called with
type MockShader struct {
	color       core.Vec3
	calls       int
	owner       core.ObjectID
	state       RayState
	stackDepths []int
}

func (m *MockShader) Shade(ctx *shading.Context, pixel core.Pixel, hit *core.SurfaceHit, caster Caster, state RayState, iors *refraction.Stack) core.Vec3 {
	m.calls++
	m.owner = iors.CurrentOwner()
	m.state = state
	m.stackDepths = append(m.stackDepths, iors.Depth())
	return m.color
}

// MockSpectralShader adds a wavelength path
type MockSpectralShader struct {
	MockShader
	amplitude float64
}

func (m *MockSpectralShader) ShadeNM(ctx *shading.Context, pixel core.Pixel, hit *core.SurfaceHit, caster Caster, state RayState, nm float64, iors *refraction.Stack) float64 {
	m.calls++
	return m.amplitude
}

type constantMap struct {
	color core.Vec3
}

func (c constantMap) SampleRadianceMap(ray core.Ray, pixel core.Pixel) core.Vec3 {
	return c.color
}

func testHit(object core.ObjectID) *core.SurfaceHit {
	return &core.SurfaceHit{Hit: true, TEnter: 2.5, Object: object, Basis: core.NewONBFromW(core.NewVec3(0, 0, 1))}
}

func testRay() core.Ray {
	return core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))
}

func TestCast_TerminatesWithoutTouchingScene(t *testing.T) {
	config := Config{MaxDepth: 4, MinImportance: 0.05}
	fallback := core.NewVec3(0.1, 0.2, 0.3)

	tests := []struct {
		name  string
		state RayState
	}{
		{"Depth past maximum", RayState{Depth: 5, Importance: 1}},
		{"Far past maximum", RayState{Depth: 100, Importance: 1}},
		{"Importance below minimum", RayState{Depth: 1, Importance: 0.01}},
		{"Zero importance", RayState{Depth: 2, Importance: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene := &MockScene{hit: testHit(1)}
			shader := &MockShader{color: core.NewVec3(1, 1, 1)}
			rc := New(scene, shader, constantMap{core.NewVec3(9, 9, 9)}, config)

			color, _, hit := rc.Cast(shading.NewContext(1, false), core.Pixel{}, testRay(), tt.state, fallback, nil)
			if color != fallback || hit {
				t.Errorf("Expected fallback %v without hit, got %v (hit=%v)", fallback, color, hit)
			}
			if scene.intersects != 0 || shader.calls != 0 {
				t.Errorf("Expected no scene or shader calls, got %d and %d", scene.intersects, shader.calls)
			}
			if rc.Stats().Terminated != 1 {
				t.Errorf("Expected one termination, got %+v", rc.Stats())
			}
		})
	}
}

func TestCast_AtLimitsStillTraces(t *testing.T) {
	scene := &MockScene{hit: testHit(1)}
	shader := &MockShader{color: core.NewVec3(0.5, 0.5, 0.5)}
	rc := New(scene, shader, nil, Config{MaxDepth: 4, MinImportance: 0.05})

	state := RayState{Depth: 4, Importance: 0.05}
	color, distance, hit := rc.Cast(shading.NewContext(1, false), core.Pixel{}, testRay(), state, core.Vec3{}, nil)
	if !hit || color != shader.color || distance != 2.5 {
		t.Errorf("Expected shaded hit at 2.5, got %v %f %v", color, distance, hit)
	}
}

func TestCast_MissUsesRadianceMap(t *testing.T) {
	fallback := core.NewVec3(1, 0, 0)
	ctx := shading.NewContext(1, false)

	withMap := New(&MockScene{}, &MockShader{}, constantMap{core.NewVec3(0.2, 0.2, 0.2)}, DefaultConfig())
	if color, _, hit := withMap.Cast(ctx, core.Pixel{}, testRay(), NewRayState(), fallback, nil); hit || color != core.NewVec3(0.2, 0.2, 0.2) {
		t.Errorf("Expected radiance map color, got %v (hit=%v)", color, hit)
	}

	withoutMap := New(&MockScene{}, &MockShader{}, nil, DefaultConfig())
	if color, _, _ := withoutMap.Cast(ctx, core.Pixel{}, testRay(), NewRayState(), fallback, nil); color != fallback {
		t.Errorf("Expected fallback color, got %v", color)
	}
}

func TestCast_SetsOwnerBeforeShading(t *testing.T) {
	const object core.ObjectID = 42
	shader := &MockShader{}
	rc := New(&MockScene{hit: testHit(object)}, shader, nil, DefaultConfig())
	ctx := shading.NewContext(1, false)

	// Without a stack the caster starts one in the ambient medium
	rc.Cast(ctx, core.Pixel{}, testRay(), NewRayState(), core.Vec3{}, nil)
	if shader.owner != object || shader.stackDepths[0] != 1 {
		t.Errorf("Expected fresh stack owned by %d, got owner %d depth %d", object, shader.owner, shader.stackDepths[0])
	}

	// A supplied stack is passed through with its history intact
	iors := refraction.NewStack(1.0)
	iors.SetCurrentOwner(7)
	iors.Push(1.33)
	rc.Cast(ctx, core.Pixel{}, testRay(), NewRayState().Next(scatter.Refraction, 0.9), core.Vec3{}, iors)
	if shader.owner != object || shader.stackDepths[1] != 2 {
		t.Errorf("Expected supplied stack owned by %d, got owner %d depth %d", object, shader.owner, shader.stackDepths[1])
	}
	if shader.state.Depth != 2 || shader.state.Kind != scatter.Refraction {
		t.Errorf("Expected state to be passed through, got %+v", shader.state)
	}
}

func TestCastNM(t *testing.T) {
	ctx := shading.NewContext(1, false)

	plain := New(&MockScene{hit: testHit(1)}, &MockShader{color: core.NewVec3(1, 1, 1)}, nil, DefaultConfig())
	if v, _, hit := plain.CastNM(ctx, core.Pixel{}, testRay(), NewRayState(), 0.7, 550, nil); v != 0 || !hit {
		t.Errorf("Expected zero amplitude from non-spectral shader, got %f (hit=%v)", v, hit)
	}

	spectral := &MockSpectralShader{amplitude: 0.4}
	rc := New(&MockScene{hit: testHit(1)}, spectral, nil, DefaultConfig())
	if v, _, _ := rc.CastNM(ctx, core.Pixel{}, testRay(), NewRayState(), 0, 550, nil); v != 0.4 {
		t.Errorf("Expected spectral shader amplitude, got %f", v)
	}

	miss := New(&MockScene{}, spectral, constantMap{core.NewVec3(0.9, 0.6, 0.3)}, DefaultConfig())
	if v, _, _ := miss.CastNM(ctx, core.Pixel{}, testRay(), NewRayState(), 0, core.GreenWavelength, nil); v != 0.6 {
		t.Errorf("Expected radiance map green channel, got %f", v)
	}

	if v, _, _ := rc.CastNM(ctx, core.Pixel{}, testRay(), RayState{Depth: 99, Importance: 1}, 0.25, 550, nil); v != 0.25 {
		t.Errorf("Expected fallback amplitude on termination, got %f", v)
	}
}

func TestCastShadowRay(t *testing.T) {
	scene := &MockScene{blocked: true}
	rc := New(scene, &MockShader{}, nil, DefaultConfig())

	if !rc.CastShadowRay(testRay(), 10) {
		t.Error("Expected blocked shadow ray")
	}
	if scene.shadowChecks != 1 || rc.Stats().ShadowRays != 1 {
		t.Errorf("Expected one shadow query, got %d / %+v", scene.shadowChecks, rc.Stats())
	}
}

func TestRayState_Next(t *testing.T) {
	s := NewRayState()
	next := s.Next(scatter.Diffuse, 0.5).Next(scatter.Reflection, 0.5)

	if s.Depth != 1 || s.Importance != 1 || !s.ConsiderEmission {
		t.Errorf("Original state must not change, got %+v", s)
	}
	if next.Depth != 3 || next.Importance != 0.25 || next.Kind != scatter.Reflection {
		t.Errorf("Unexpected derived state %+v", next)
	}
	if s.WithoutEmission().ConsiderEmission || !s.ConsiderEmission {
		t.Error("WithoutEmission must return a modified copy")
	}
}
