package gallery

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ProjectionEquirectangular is the only projection the viewer is fed.
const ProjectionEquirectangular = "equirectangular"

// Scene is one viewable panorama entry. Field names are the viewer widget's
// configuration contract.
type Scene struct {
	Type     string `json:"type"`
	Panorama string `json:"panorama"`
	HFOV     int    `json:"hfov"`
	Pitch    int    `json:"pitch"`
	Yaw      int    `json:"yaw"`
}

// SceneSet is an id-to-Scene collection that remembers insertion order.
// The order determines the implicit first scene and the byte layout of the
// serialized viewer configuration, so it must survive marshalling.
type SceneSet struct {
	scenes map[string]Scene
	order  []string
}

func NewSceneSet() *SceneSet {
	return &SceneSet{scenes: make(map[string]Scene)}
}

func (s *SceneSet) add(id string, scene Scene) {
	if _, exists := s.scenes[id]; !exists {
		s.order = append(s.order, id)
	}
	s.scenes[id] = scene
}

// Get returns the scene for id.
func (s *SceneSet) Get(id string) (Scene, bool) {
	scene, ok := s.scenes[id]
	return scene, ok
}

// Has reports whether id names a scene in the set.
func (s *SceneSet) Has(id string) bool {
	_, ok := s.scenes[id]
	return ok
}

// IDs returns the scene ids in insertion order.
func (s *SceneSet) IDs() []string {
	ids := make([]string, len(s.order))
	copy(ids, s.order)
	return ids
}

// First returns the id of the first inserted scene, or "" if empty.
func (s *SceneSet) First() string {
	if len(s.order) == 0 {
		return ""
	}
	return s.order[0]
}

func (s *SceneSet) Len() int {
	return len(s.order)
}

// MarshalJSON emits the scenes as a JSON object with keys in insertion
// order. encoding/json sorts map keys, which would break the determinism
// contract on the serialized configuration.
func (s *SceneSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range s.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(s.scenes[id])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// sceneBuilder assembles a SceneSet one image at a time, assigning unique
// ids. The collision counter is scoped to a single build pass; nothing
// survives between resolutions.
type sceneBuilder struct {
	set  *SceneSet
	seen map[string]int
	hfov int
}

func newSceneBuilder(hfov int) *sceneBuilder {
	return &sceneBuilder{
		set:  NewSceneSet(),
		seen: make(map[string]int),
		hfov: hfov,
	}
}

// Add slugifies idBase into a scene id, disambiguating repeats with a
// numeric suffix that starts at -2 for the second occurrence. Later
// duplicates keep their suffix forever via persisted deep-link URLs, so the
// numbering follows first-seen order exactly.
func (b *sceneBuilder) Add(webPath, idBase string) string {
	id := ToSlug(idBase)
	if n, ok := b.seen[id]; ok {
		b.seen[id] = n + 1
		id = fmt.Sprintf("%s-%d", id, n+1)
	} else {
		b.seen[id] = 1
	}

	b.set.add(id, Scene{
		Type:     ProjectionEquirectangular,
		Panorama: webPath,
		HFOV:     b.hfov,
	})
	return id
}
