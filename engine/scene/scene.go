package scene

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/brink/engine/camera"
	"github.com/Carmen-Shannon/brink/engine/light"
	"github.com/Carmen-Shannon/brink/engine/model"
	"github.com/Carmen-Shannon/brink/engine/renderer/material"
	"github.com/google/uuid"
)

// MeshDraw is one mesh's marshaled draw data inside a FrameState: the upload
// buffers plus the counts the renderer needs to issue the draw call.
type MeshDraw struct {
	ID            uuid.UUID
	Name          string
	VertexData    []byte
	IndexData     []byte
	InstanceData  []byte
	IndexCount    int
	InstanceCount int
}

// FrameState is an immutable snapshot of everything the renderer consumes for
// one frame: uniform buffer contents, the per-light view-projections driving
// the shadow passes, and the marshaled draw data for every mesh. Snapshots are
// produced once per frame by Scene.Snapshot and are never mutated afterwards,
// so the renderer can read them without holding scene locks.
type FrameState struct {
	CameraUniform   []byte
	LightArray      []byte
	MaterialUniform []byte

	// LightViewProjections[i] drives shadow pass i; LightActive[i] is false
	// for empty slots, whose passes only clear their depth slice.
	LightViewProjections [light.MaxLights][16]float32
	LightActive          [light.MaxLights]bool

	Meshes []MeshDraw
}

// sceneImpl is the implementation of the Scene interface.
type sceneImpl struct {
	mu *sync.RWMutex

	name string
	cam  camera.Camera
	mat  material.Material

	slots  [light.MaxLights]light.Light
	meshes map[uuid.UUID]model.Mesh
	order  []uuid.UUID // registry iteration order, insertion-stable

	// snapshotPool marshals per-mesh draw data in parallel. Workers persist
	// across frames, avoiding per-frame goroutine spawn/teardown overhead.
	snapshotPool worker.DynamicWorkerPool
	workers      int
}

// Scene defines the interface for the renderable world: one camera, a fixed
// set of light slots, a registry of meshes, and the globally active material.
//
// The scene is the hand-off point between simulation and rendering: mutators
// run on the game side, and Snapshot produces the read-only FrameState the
// renderer consumes. All methods are safe for concurrent use.
type Scene interface {
	// Name retrieves the scene identifier.
	//
	// Returns:
	//   - string: the scene name
	Name() string

	// Camera retrieves the scene's camera.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// SetCamera replaces the scene's camera. A nil camera is ignored.
	//
	// Parameters:
	//   - cam: the camera to set
	SetCamera(cam camera.Camera)

	// Material retrieves the globally active material all meshes are shaded with.
	//
	// Returns:
	//   - material.Material: the active material
	Material() material.Material

	// SetMaterial replaces the active material. A nil material is ignored.
	//
	// Parameters:
	//   - mat: the material to set
	SetMaterial(mat material.Material)

	// Light retrieves the light in the given slot.
	//
	// Parameters:
	//   - slot: the slot index in [0, MaxLights)
	//
	// Returns:
	//   - light.Light: the light, or nil if the slot is empty or out of range
	Light(slot int) light.Light

	// SetLight places a light in the given slot; passing nil empties the slot.
	// Slot order matters: slot i's shadow map occupies layer i of the shadow
	// depth array.
	//
	// Parameters:
	//   - slot: the slot index in [0, MaxLights)
	//   - l: the light to place, or nil to clear
	//
	// Returns:
	//   - error: non-nil if slot is out of range
	SetLight(slot int, l light.Light) error

	// Lights returns a copy of all light slots.
	//
	// Returns:
	//   - [light.MaxLights]light.Light: the slots (nil entries are empty)
	Lights() [light.MaxLights]light.Light

	// AddMesh registers a mesh and returns its handle.
	//
	// Parameters:
	//   - m: the mesh to register
	//
	// Returns:
	//   - uuid.UUID: the mesh's registry handle
	AddMesh(m model.Mesh) uuid.UUID

	// Mesh retrieves a registered mesh by handle.
	//
	// Parameters:
	//   - id: the registry handle
	//
	// Returns:
	//   - model.Mesh: the mesh, or nil if not registered
	Mesh(id uuid.UUID) model.Mesh

	// RemoveMesh unregisters a mesh.
	//
	// Parameters:
	//   - id: the registry handle
	//
	// Returns:
	//   - bool: true if the mesh was registered
	RemoveMesh(id uuid.UUID) bool

	// MeshCount returns the number of registered meshes.
	//
	// Returns:
	//   - int: the mesh count
	MeshCount() int

	// Snapshot marshals the current scene state into an immutable FrameState
	// for the renderer. Per-mesh draw data is marshaled in parallel on the
	// scene's worker pool.
	//
	// Returns:
	//   - *FrameState: the frame snapshot
	Snapshot() *FrameState
}

var _ Scene = &sceneImpl{}

// NewScene creates a new Scene with the given name. A camera is required;
// NewScene panics if none is configured, since every snapshot needs one.
//
// Parameters:
//   - name: the scene identifier
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, options ...SceneBuilderOption) Scene {
	s := &sceneImpl{
		mu:      &sync.RWMutex{},
		name:    name,
		meshes:  make(map[uuid.UUID]model.Mesh),
		workers: max(runtime.NumCPU()-1, 1),
	}

	for _, option := range options {
		option(s)
	}

	if s.cam == nil {
		panic("scene: NewScene requires a camera (use WithCamera)")
	}
	if s.mat == nil {
		s.mat = material.NewMaterial(material.WithName(fmt.Sprintf("%s_default", name)))
	}

	// Initialized after options so WithWorkers can override the default.
	// Queue size of 256 accommodates typical mesh counts with headroom.
	s.snapshotPool = worker.NewDynamicWorkerPool(s.workers, 256, 1*time.Second)

	return s
}

func (s *sceneImpl) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *sceneImpl) Camera() camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam
}

func (s *sceneImpl) SetCamera(cam camera.Camera) {
	if cam == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cam = cam
}

func (s *sceneImpl) Material() material.Material {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mat
}

func (s *sceneImpl) SetMaterial(mat material.Material) {
	if mat == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mat = mat
}

func (s *sceneImpl) Light(slot int) light.Light {
	if slot < 0 || slot >= light.MaxLights {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.slots[slot]
}

func (s *sceneImpl) SetLight(slot int, l light.Light) error {
	if slot < 0 || slot >= light.MaxLights {
		return fmt.Errorf("scene: light slot %d out of range [0, %d)", slot, light.MaxLights)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[slot] = l
	return nil
}

func (s *sceneImpl) Lights() [light.MaxLights]light.Light {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.slots
}

func (s *sceneImpl) AddMesh(m model.Mesh) uuid.UUID {
	id := uuid.New()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meshes[id] = m
	s.order = append(s.order, id)
	return id
}

func (s *sceneImpl) Mesh(id uuid.UUID) model.Mesh {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.meshes[id]
}

func (s *sceneImpl) RemoveMesh(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.meshes[id]; !ok {
		return false
	}
	delete(s.meshes, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *sceneImpl) MeshCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.meshes)
}

func (s *sceneImpl) Snapshot() *FrameState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	camUniform := camera.ToGPUCameraUniform(s.cam)
	matUniform := material.ToGPUMaterial(s.mat)

	fs := &FrameState{
		CameraUniform:   camUniform.Marshal(),
		LightArray:      light.MarshalLightArray(s.slots),
		MaterialUniform: matUniform.Marshal(),
		Meshes:          make([]MeshDraw, len(s.order)),
	}

	for i, l := range s.slots {
		if l == nil || l.Type() == light.LightTypeNil {
			continue
		}
		fs.LightActive[i] = true
		l.ViewProjection(fs.LightViewProjections[i][:])
	}

	// Parallel per-mesh marshal. A WaitGroup provides the frame barrier since
	// the pool's own Wait blocks until workers idle-exit, which is unsuitable
	// for frame-rate workloads.
	var wg sync.WaitGroup
	for i, id := range s.order {
		m := s.meshes[id]
		wg.Add(1)
		idx, mid, mesh := i, id, m
		s.snapshotPool.SubmitTask(worker.Task{
			ID: idx,
			Do: func() (any, error) {
				defer wg.Done()
				fs.Meshes[idx] = MeshDraw{
					ID:            mid,
					Name:          mesh.Name(),
					VertexData:    mesh.VertexBytes(),
					IndexData:     mesh.IndexBytes(),
					InstanceData:  mesh.InstanceBytes(),
					IndexCount:    mesh.IndexCount(),
					InstanceCount: mesh.InstanceCount(),
				}
				return nil, nil
			},
		})
	}
	wg.Wait()

	return fs
}
