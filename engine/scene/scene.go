package scene

import (
	_ "embed"
	"fmt"
	"image/color"
	"log"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/cubewalk/common"
	"github.com/Carmen-Shannon/cubewalk/engine/camera"
	"github.com/Carmen-Shannon/cubewalk/engine/game_object"
	"github.com/Carmen-Shannon/cubewalk/engine/input"
	"github.com/Carmen-Shannon/cubewalk/engine/light"
	"github.com/Carmen-Shannon/cubewalk/engine/model"
	"github.com/Carmen-Shannon/cubewalk/engine/renderer"
	"github.com/Carmen-Shannon/cubewalk/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/cubewalk/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/cubewalk/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// CubeShaderSource is the WGSL used to draw every object: one instanced, textured and lit cube.
//
//go:embed assets/cube.wgsl
var CubeShaderSource string

const (
	// CubePipelineKey is the renderer key of the cube pipeline.
	CubePipelineKey = "cube"

	// bind group indices used by cube.wgsl
	groupCamera    = 0
	groupInstances = 1
	groupLight     = 2
	groupTexture   = 3

	// instanceChunk is the number of objects one worker task builds
	instanceChunk = 256

	defaultInstanceCapacity = 64
)

// instanceSize is the byte stride of one model.GPUInstance in the instance buffer.
var instanceSize = (&model.GPUInstance{}).Size()

type scene struct {
	name string

	cam     camera.Camera
	objects []game_object.GameObject
	lt      light.Light
	fovKick *camera.FovKick

	nextID uint64

	// obstacles is the enabled objects, rebuilt every Update
	obstacles []camera.Obstacle

	r                renderer.Renderer
	cube             model.Model
	texture          *common.TextureStagingData
	instanceProvider bind_group_provider.BindGroupProvider
	lightProvider    bind_group_provider.BindGroupProvider
	textureProvider  bind_group_provider.BindGroupProvider
	instanceCapacity int
	visible          int
	instanceBytes    []byte

	pool            worker.DynamicWorkerPool
	workers         int
	cullingDisabled bool
}

// Scene owns the camera, the world objects and the light, and turns input into camera
// movement each frame. When a renderer is attached it also owns the cube pipeline and the
// GPU resources for drawing every visible object in one instanced draw.
//
// A Scene is driven by a single update loop and is not safe for concurrent use. Instance
// building fans out to a worker pool internally and joins before returning.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// Light returns the scene's light.
	Light() light.Light

	// Renderer returns the attached renderer, or nil when the scene is simulation only.
	Renderer() renderer.Renderer

	// Objects returns the scene objects in collision order.
	//
	// Returns:
	//   - []game_object.GameObject: the objects
	Objects() []game_object.GameObject

	// Add appends objects. They are resolved for collisions after every earlier object.
	// Objects with ID 0 are assigned the next free ID.
	//
	// Parameters:
	//   - objects: the objects to append
	Add(objects ...game_object.GameObject)

	// Get finds an object by ID.
	//
	// Parameters:
	//   - id: the object ID
	//
	// Returns:
	//   - game_object.GameObject: the first object with that ID, or nil
	Get(id uint64) game_object.GameObject

	// Remove deletes every object with the given ID, keeping the order of the rest.
	//
	// Parameters:
	//   - id: the object ID
	//
	// Returns:
	//   - bool: true if anything was removed
	Remove(id uint64) bool

	// Update runs one frame of camera simulation: held movement keys, gravity, collision
	// push-out against enabled objects, mouse look, the run FOV kick and orientation smoothing.
	//
	// Parameters:
	//   - dt: frame time in seconds
	//   - frame: the input gathered since the last frame
	Update(dt float32, frame input.Frame)

	// Instances frustum-culls enabled objects against the camera and returns their instance
	// data in object order.
	//
	// Returns:
	//   - []model.GPUInstance: one entry per visible object
	Instances() []model.GPUInstance

	// PrepareFrame uploads the camera, light and visible instances. It grows the instance
	// buffer when needed. Does nothing without a renderer.
	//
	// Returns:
	//   - error: an error if the instance buffer could not be grown
	PrepareFrame() error

	// DrawCalls encodes the instanced cube draw. Must run between the renderer's BeginFrame
	// and EndFrame, after PrepareFrame.
	//
	// Returns:
	//   - error: an error if no renderer is attached or the draw fails
	DrawCalls() error

	// Release frees the scene's GPU resources.
	Release()
}

var _ Scene = &scene{}

// NewScene creates a scene around cam. With a renderer attached, the cube pipeline and its
// bind groups are created immediately and NewScene panics if that fails.
//
// Parameters:
//   - name: the scene name
//   - cam: the camera to drive, must not be nil
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the new scene
func NewScene(name string, cam camera.Camera, options ...SceneBuilderOption) Scene {
	if cam == nil {
		panic("scene: NewScene requires a non-nil Camera")
	}

	s := &scene{
		name:             name,
		cam:              cam,
		nextID:           1,
		workers:          max(runtime.NumCPU()-1, 1),
		instanceCapacity: defaultInstanceCapacity,
	}
	for _, option := range options {
		option(s)
	}
	if s.lt == nil {
		s.lt = light.NewLight()
	}
	// workers persist across frames and idle out after a second without work
	s.pool = worker.NewDynamicWorkerPool(s.workers, 256, 1*time.Second)

	if s.r != nil {
		if err := s.initGPU(); err != nil {
			panic(fmt.Errorf("scene: failed to initialize GPU resources: %w", err))
		}
	}
	return s
}

func (s *scene) Name() string {
	return s.name
}

func (s *scene) Camera() camera.Camera {
	return s.cam
}

func (s *scene) Light() light.Light {
	return s.lt
}

func (s *scene) Renderer() renderer.Renderer {
	return s.r
}

func (s *scene) Objects() []game_object.GameObject {
	return s.objects
}

func (s *scene) Add(objects ...game_object.GameObject) {
	s.add(objects...)
}

func (s *scene) add(objects ...game_object.GameObject) {
	for _, obj := range objects {
		if obj == nil {
			continue
		}
		if obj.ID() == 0 {
			obj.SetID(s.nextID)
		}
		s.nextID = max(s.nextID, obj.ID()+1)
		s.objects = append(s.objects, obj)
	}
}

func (s *scene) Get(id uint64) game_object.GameObject {
	for _, obj := range s.objects {
		if obj.ID() == id {
			return obj
		}
	}
	return nil
}

func (s *scene) Remove(id uint64) bool {
	kept := s.objects[:0]
	for _, obj := range s.objects {
		if obj.ID() != id {
			kept = append(kept, obj)
		}
	}
	removed := len(kept) != len(s.objects)
	clear(s.objects[len(kept):])
	s.objects = kept
	return removed
}

// rebuildObstacles refreshes the collision list from the enabled objects.
func (s *scene) rebuildObstacles() {
	s.obstacles = s.obstacles[:0]
	for _, obj := range s.objects {
		if obj.Enabled() {
			s.obstacles = append(s.obstacles, obj)
		}
	}
}

func (s *scene) Update(dt float32, frame input.Frame) {
	for _, key := range frame.Keys {
		s.cam.ProcessKey(key, dt, frame.Running)
	}

	ctrl := s.cam.Controller()
	ctrl.IntegratePhysics(dt)
	s.rebuildObstacles()
	ctrl.ResolveCollisions(s.obstacles, ctrl.Radius())

	s.cam.ApplyMouseDelta(frame.MouseDX, frame.MouseDY, true)
	if s.fovKick != nil {
		s.cam.SetFov(s.fovKick.Update(frame.Running && len(frame.Keys) > 0, dt))
	}
	s.cam.Advance(dt)
}

func (s *scene) Instances() []model.GPUInstance {
	n := len(s.objects)
	if n == 0 {
		return nil
	}

	frustum := common.ExtractFrustum(s.cam.ViewProjectionMatrix())
	built := make([]model.GPUInstance, n)
	visible := make([]bool, n)

	build := func(start, end int) {
		for i := start; i < end; i++ {
			obj := s.objects[i]
			if !obj.Enabled() || (!s.cullingDisabled && !frustum.IntersectsAABB(cullBox(obj))) {
				continue
			}
			built[i] = model.NewGPUInstance(obj.ModelMatrix(), obj.Color())
			visible[i] = true
		}
	}

	if n <= instanceChunk {
		build(0, n)
	} else {
		// a WaitGroup is the per-frame barrier; the pool itself only waits for idle workers
		var wg sync.WaitGroup
		for id, start := 0, 0; start < n; id, start = id+1, start+instanceChunk {
			end := min(start+instanceChunk, n)
			wg.Add(1)
			s.pool.SubmitTask(worker.Task{
				ID: id,
				Do: func() (any, error) {
					defer wg.Done()
					build(start, end)
					return nil, nil
				},
			})
		}
		wg.Wait()
	}

	out := built[:0]
	for i := range built {
		if visible[i] {
			out = append(out, built[i])
		}
	}
	return out
}

// cullBox returns the bounds used for frustum culling. Rotated objects use a cube that
// encloses every orientation.
func cullBox(obj game_object.GameObject) common.AABB {
	box := obj.AABB()
	if _, angle := obj.Rotation(); angle != 0 {
		r := box.HalfExtents().Len()
		return common.NewAABB(box.Center(), mgl32.Vec3{r, r, r})
	}
	return box
}

// initGPU registers the cube pipeline, uploads the cube mesh and texture and creates the
// camera, instance, light and texture bind groups.
func (s *scene) initGPU() error {
	p := pipeline.NewPipeline(CubePipelineKey, pipeline.WithShaders(
		shader.NewShader("cube_vs", shader.ShaderTypeVertex, CubeShaderSource),
		shader.NewShader("cube_fs", shader.ShaderTypeFragment, CubeShaderSource),
	))
	if err := s.r.RegisterPipelines(p); err != nil {
		return err
	}
	layouts := s.r.Pipeline(CubePipelineKey).BindGroupLayoutDescriptors()

	s.cube = model.NewCubeModel()
	if err := s.r.InitMeshBuffers(s.cube.MeshProvider(), s.cube.VertexData(), s.cube.IndexData(), s.cube.IndexCount()); err != nil {
		return fmt.Errorf("cube mesh: %w", err)
	}

	if err := s.r.InitBindGroup(s.cam.BindGroupProvider(), layouts[groupCamera], nil); err != nil {
		return fmt.Errorf("camera bind group: %w", err)
	}

	s.instanceProvider = bind_group_provider.NewBindGroupProvider(s.name + "_instances")
	if err := s.initInstanceBuffer(layouts[groupInstances]); err != nil {
		return err
	}

	s.lightProvider = bind_group_provider.NewBindGroupProvider(s.name + "_light")
	if err := s.r.InitBindGroup(s.lightProvider, layouts[groupLight], nil); err != nil {
		return fmt.Errorf("light bind group: %w", err)
	}

	tex := common.CheckerTexture(256, 8, color.RGBA{R: 200, G: 200, B: 200, A: 255}, color.RGBA{R: 120, G: 120, B: 120, A: 255})
	if s.texture != nil {
		tex = *s.texture
	}
	s.textureProvider = bind_group_provider.NewBindGroupProvider(s.name + "_texture")
	if err := s.r.InitTextureView(s.textureProvider, 0, tex); err != nil {
		return fmt.Errorf("texture: %w", err)
	}
	if err := s.r.InitSampler(s.textureProvider, 1, common.SamplerStagingData{}); err != nil {
		return fmt.Errorf("sampler: %w", err)
	}
	if err := s.r.InitBindGroup(s.textureProvider, layouts[groupTexture], nil); err != nil {
		return fmt.Errorf("texture bind group: %w", err)
	}

	log.Printf("[Scene] %s: GPU resources ready for %d objects", s.name, len(s.objects))
	return nil
}

// initInstanceBuffer (re)creates the instance storage buffer at the current capacity.
func (s *scene) initInstanceBuffer(layout wgpu.BindGroupLayoutDescriptor) error {
	size := uint64(s.instanceCapacity * instanceSize)
	if err := s.r.InitBindGroup(s.instanceProvider, layout, map[int]uint64{0: size}); err != nil {
		return fmt.Errorf("instance bind group: %w", err)
	}
	return nil
}

func (s *scene) PrepareFrame() error {
	if s.r == nil {
		return nil
	}

	instances := s.Instances()
	if len(instances) > s.instanceCapacity {
		for s.instanceCapacity < len(instances) {
			s.instanceCapacity *= 2
		}
		s.instanceProvider.Release()
		if err := s.initInstanceBuffer(s.r.Pipeline(CubePipelineKey).BindGroupLayoutDescriptors()[groupInstances]); err != nil {
			return err
		}
		log.Printf("[Scene] %s: instance buffer grown to %d", s.name, s.instanceCapacity)
	}

	need := len(instances) * instanceSize
	if cap(s.instanceBytes) < need {
		s.instanceBytes = make([]byte, need)
	}
	s.instanceBytes = s.instanceBytes[:need]
	for i := range instances {
		instances[i].MarshalTo(s.instanceBytes[i*instanceSize:])
	}
	s.visible = len(instances)

	camUniform := camera.NewGPUCameraUniform(s.cam)
	lightUniform := light.NewGPULightUniform(s.lt)
	s.r.WriteBuffers([]bind_group_provider.BufferWrite{
		{Provider: s.cam.BindGroupProvider(), Binding: 0, Data: camUniform.Marshal()},
		{Provider: s.lightProvider, Binding: 0, Data: lightUniform.Marshal()},
		{Provider: s.instanceProvider, Binding: 0, Data: s.instanceBytes},
	})
	return nil
}

func (s *scene) DrawCalls() error {
	if s.r == nil {
		return fmt.Errorf("scene %q has no renderer attached", s.name)
	}
	return s.r.DrawCall(CubePipelineKey, s.cube.MeshProvider(), uint32(s.visible), []bind_group_provider.BindGroupProvider{
		s.cam.BindGroupProvider(),
		s.instanceProvider,
		s.lightProvider,
		s.textureProvider,
	})
}

func (s *scene) Release() {
	for _, p := range []bind_group_provider.BindGroupProvider{s.instanceProvider, s.lightProvider, s.textureProvider} {
		if p != nil {
			p.Release()
		}
	}
	if s.cube != nil {
		s.cube.MeshProvider().Release()
	}
	s.cam.BindGroupProvider().Release()
}
