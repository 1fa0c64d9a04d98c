package russimp

import (
	"cogentcore.org/core/math32"

	"github.com/taigrr/russimp/sys"
)

// Camera describes a camera in the scene. Position, Up and LookAt are
// relative to the node of the same name; HorizontalFOV is in radians.
type Camera struct {
	Name              string
	Position          math32.Vector3
	Up                math32.Vector3
	LookAt            math32.Vector3
	HorizontalFOV     float32
	ClipPlaneNear     float32
	ClipPlaneFar      float32
	Aspect            float32
	OrthographicWidth float32
}

func (c *Camera) FromRaw(r *sys.AiCamera) {
	c.Name = r.MName.String()
	c.Position = r.MPosition.Vec3()
	c.Up = r.MUp.Vec3()
	c.LookAt = r.MLookAt.Vec3()
	c.HorizontalFOV = r.MHorizontalFOV
	c.ClipPlaneNear = r.MClipPlaneNear
	c.ClipPlaneFar = r.MClipPlaneFar
	c.Aspect = r.MAspect
	c.OrthographicWidth = r.MOrthographicWidth
}
