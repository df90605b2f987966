package gateway

import "context"

// GetSceneCount returns the number of scenes in the song.
func (g *Gateway) GetSceneCount(ctx context.Context) (int, error) {
	return g.requestInt(ctx, "/song/get/num_scenes")
}

// GetScene queries a scene's name and color. The per-scene tempo and time
// signature overrides are not queried; Tempo is left nil and TimeSignature
// empty.
func (g *Gateway) GetScene(ctx context.Context, sceneID int) (Scene, error) {
	if err := validateSceneID(sceneID); err != nil {
		return Scene{}, err
	}

	s := Scene{ID: sceneID}
	var err error
	if s.Name, err = g.requestString(ctx, "/scene/get/name", int32(sceneID)); err != nil {
		return Scene{}, err
	}
	if s.Color, err = g.requestInt(ctx, "/scene/get/color", int32(sceneID)); err != nil {
		return Scene{}, err
	}
	return s, nil
}

// FireScene launches every clip slot in a scene's row.
func (g *Gateway) FireScene(sceneID int) error {
	if err := validateSceneID(sceneID); err != nil {
		return err
	}
	return g.send("/scene/fire", int32(sceneID))
}

// CreateScene inserts a new empty scene at the given index.
func (g *Gateway) CreateScene(index int) error {
	if index < -1 {
		return validationErr("index", "must be >= -1 (-1 appends at the end)")
	}
	return g.send("/song/create_scene", int32(index))
}

// DeleteScene removes a scene.
func (g *Gateway) DeleteScene(sceneID int) error {
	if err := validateSceneID(sceneID); err != nil {
		return err
	}
	return g.send("/song/delete_scene", int32(sceneID))
}

// SetSceneName renames a scene.
func (g *Gateway) SetSceneName(sceneID int, name string) error {
	if err := validateSceneID(sceneID); err != nil {
		return err
	}
	return g.send("/scene/set/name", int32(sceneID), name)
}

// SetSceneColor recolors a scene.
func (g *Gateway) SetSceneColor(sceneID, color int) error {
	if err := validateSceneID(sceneID); err != nil {
		return err
	}
	return g.send("/scene/set/color", int32(sceneID), int32(color))
}
