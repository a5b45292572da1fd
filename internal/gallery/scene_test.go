package gallery

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneBuilderAssignsUniqueIDs(t *testing.T) {
	b := newSceneBuilder(105)

	assert.Equal(t, "bridge", b.Add("images/Bridge.jpg", "Bridge.jpg"))
	assert.Equal(t, "bridge-2", b.Add("images/bridge.png", "bridge.png"))
	assert.Equal(t, "bridge-3", b.Add("images/BRIDGE.jpeg", "BRIDGE.jpeg"))

	require.Equal(t, []string{"bridge", "bridge-2", "bridge-3"}, b.set.IDs())
}

func TestSceneBuilderSuffixedInputsStayDistinct(t *testing.T) {
	b := newSceneBuilder(105)

	assert.Equal(t, "bridge", b.Add("images/Bridge.jpg", "Bridge.jpg"))
	assert.Equal(t, "bridge-2", b.Add("images/bridge_2.png", "bridge_2.png"))
	assert.Equal(t, "bridge-3", b.Add("images/BRIDGE-3.jpeg", "BRIDGE-3.jpeg"))
}

func TestSceneBuilderFallbackID(t *testing.T) {
	b := newSceneBuilder(105)

	assert.Equal(t, "scene", b.Add("images/%21%21%21.jpg", "!!!.jpg"))
	assert.Equal(t, "scene-2", b.Add("images/%3F%3F%3F.png", "???.png"))
}

func TestSceneBuilderRecordsViewParameters(t *testing.T) {
	b := newSceneBuilder(95)
	id := b.Add("images/Alps.jpg", "Alps.jpg")

	scene, ok := b.set.Get(id)
	require.True(t, ok)
	assert.Equal(t, ProjectionEquirectangular, scene.Type)
	assert.Equal(t, "images/Alps.jpg", scene.Panorama)
	assert.Equal(t, 95, scene.HFOV)
	assert.Zero(t, scene.Pitch)
	assert.Zero(t, scene.Yaw)
}

func TestSceneSetMarshalKeepsInsertionOrder(t *testing.T) {
	b := newSceneBuilder(105)
	b.Add("images/zebra.jpg", "zebra.jpg")
	b.Add("images/alps.jpg", "alps.jpg")

	out, err := json.Marshal(b.set)
	require.NoError(t, err)
	assert.Equal(t,
		`{"zebra":{"type":"equirectangular","panorama":"images/zebra.jpg","hfov":105,"pitch":0,"yaw":0},`+
			`"alps":{"type":"equirectangular","panorama":"images/alps.jpg","hfov":105,"pitch":0,"yaw":0}}`,
		string(out))
}

func TestSceneSetEmptyMarshal(t *testing.T) {
	out, err := json.Marshal(NewSceneSet())
	require.NoError(t, err)
	assert.Equal(t, "{}", string(out))
}

func TestSceneSetFirst(t *testing.T) {
	s := NewSceneSet()
	assert.Equal(t, "", s.First())

	s.add("a", Scene{})
	s.add("b", Scene{})
	assert.Equal(t, "a", s.First())
	assert.Equal(t, 2, s.Len())
}
