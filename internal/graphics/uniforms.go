package graphics

// Uniform and sampler names shared with the GLSL sources under assets/shaders.
const (
	UniformModelViewProjection = "modelViewProjectionMatrix"
	UniformModelMatrix         = "modelMatrix"
	UniformNormalMatrix        = "normalMatrix"
	UniformCameraPos           = "cameraPos"
	UniformAmbientLightColor   = "ambientLightColor"
	UniformLightPositions      = "lightPositions"
	UniformLightColors         = "lightColors"
	UniformViewProjectionInv   = "viewProjectionInverse"
	UniformScreenSize          = "screenSize"
	UniformDistortionStrength  = "distortionStrength"

	SamplerModelTexture  = "tex"
	SamplerCubemap       = "cubemap"
	SamplerReflection    = "reflectionTex"
	SamplerDistortionMap = "distortionMap"
)
