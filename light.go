package russimp

import (
	"cogentcore.org/core/math32"

	"github.com/taigrr/russimp/sys"
)

// Light describes a light source attached to the node of the same name.
// Which fields are meaningful depends on Type; an ambient light for
// instance has neither position nor direction.
type Light struct {
	Name                 string
	Type                 sys.AiLightSourceType
	Position             math32.Vector3
	Direction            math32.Vector3
	Up                   math32.Vector3
	AttenuationConstant  float32
	AttenuationLinear    float32
	AttenuationQuadratic float32
	ColorDiffuse         Color3D
	ColorSpecular        Color3D
	ColorAmbient         Color3D
	AngleInnerCone       float32
	AngleOuterCone       float32
	Size                 Vector2D
}

func (l *Light) FromRaw(r *sys.AiLight) {
	l.Name = r.MName.String()
	l.Type = r.MType
	l.Position = r.MPosition.Vec3()
	l.Direction = r.MDirection.Vec3()
	l.Up = r.MUp.Vec3()
	l.AttenuationConstant = r.MAttenuationConstant
	l.AttenuationLinear = r.MAttenuationLinear
	l.AttenuationQuadratic = r.MAttenuationQuadratic
	l.ColorDiffuse.FromRaw(&r.MColorDiffuse)
	l.ColorSpecular.FromRaw(&r.MColorSpecular)
	l.ColorAmbient.FromRaw(&r.MColorAmbient)
	l.AngleInnerCone = r.MAngleInnerCone
	l.AngleOuterCone = r.MAngleOuterCone
	l.Size.FromRaw(&r.MSize)
}
