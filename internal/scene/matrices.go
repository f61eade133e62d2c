package scene

import "github.com/go-gl/mathgl/mgl32"

// Matrices is the set of transforms one scene draw uploads.
type Matrices struct {
	CameraPosition mgl32.Vec3

	Projection          mgl32.Mat4
	View                mgl32.Mat4
	ViewProjection      mgl32.Mat4
	Model               mgl32.Mat4
	ModelView           mgl32.Mat4
	ModelViewProjection mgl32.Mat4
	NormalMatrix        mgl32.Mat3

	// Skybox matrices use the view with its translation removed, so the sky stays at
	// infinity while the camera moves.
	SkyboxViewProjection        mgl32.Mat4
	SkyboxViewProjectionInverse mgl32.Mat4

	Mirror                    mgl32.Mat4
	MirrorModelViewProjection mgl32.Mat4
}

func ComputeMatrices(cam Camera, proj, model, mirror mgl32.Mat4) Matrices {
	viewProj := proj.Mul4(cam.View)
	skyboxViewProj := proj.Mul4(StripTranslation(cam.View))

	return Matrices{
		CameraPosition:              cam.Position,
		Projection:                  proj,
		View:                        cam.View,
		ViewProjection:              viewProj,
		Model:                       model,
		ModelView:                   cam.View.Mul4(model),
		ModelViewProjection:         viewProj.Mul4(model),
		NormalMatrix:                NormalMatrix(model),
		SkyboxViewProjection:        skyboxViewProj,
		SkyboxViewProjectionInverse: skyboxViewProj.Inv(),
		Mirror:                      mirror,
		MirrorModelViewProjection:   viewProj.Mul4(mirror),
	}
}

// StripTranslation zeroes the translation column of a view matrix.
func StripTranslation(view mgl32.Mat4) mgl32.Mat4 {
	view[12], view[13], view[14] = 0, 0, 0
	return view
}

// FlipsWinding reports whether m mirrors geometry, turning counter-clockwise
// triangles clockwise.
func FlipsWinding(m mgl32.Mat4) bool {
	return m.Mat3().Det() < 0
}
