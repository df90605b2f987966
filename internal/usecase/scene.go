package usecase

import (
	"context"

	"dawbridge/internal/gateway"
)

// SceneAction is a tagged variant for scene_operations (spec §4.6).
type SceneAction interface{ isSceneAction() }

type GetScene struct{ SceneID int }
type FireScene struct{ SceneID int }
type CreateScene struct{ Index int }
type DeleteScene struct{ SceneID int }
type SetSceneName struct {
	SceneID int
	Name    string
}
type SetSceneColor struct {
	SceneID int
	Color   int
}

func (GetScene) isSceneAction()      {}
func (FireScene) isSceneAction()     {}
func (CreateScene) isSceneAction()   {}
func (DeleteScene) isSceneAction()   {}
func (SetSceneName) isSceneAction()  {}
func (SetSceneColor) isSceneAction() {}

// SceneOperations dispatches a single tagged SceneAction against the
// gateway (spec §4.6, scene_operations).
func SceneOperations(ctx context.Context, gw *gateway.Gateway, action SceneAction) Result {
	switch a := action.(type) {
	case GetScene:
		sc, err := gw.GetScene(ctx, a.SceneID)
		if err != nil {
			return errResult(err)
		}
		return ok("fetched scene", sc)
	case FireScene:
		if err := gw.FireScene(a.SceneID); err != nil {
			return errResult(err)
		}
		return ok("scene fired", nil)
	case CreateScene:
		if err := gw.CreateScene(a.Index); err != nil {
			return errResult(err)
		}
		return ok("scene created", nil)
	case DeleteScene:
		if err := gw.DeleteScene(a.SceneID); err != nil {
			return errResult(err)
		}
		return ok("scene deleted", nil)
	case SetSceneName:
		if err := gw.SetSceneName(a.SceneID, a.Name); err != nil {
			return errResult(err)
		}
		return ok("scene renamed", nil)
	case SetSceneColor:
		if err := gw.SetSceneColor(a.SceneID, a.Color); err != nil {
			return errResult(err)
		}
		return ok("scene recolored", nil)
	default:
		return fail(ErrCodeInternal, "unknown scene action")
	}
}
