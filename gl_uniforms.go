package spincube

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

type lightLocations struct {
	position, ambient, diffuse, specular int32
}

// uniformLocations is filled once from a linked program.
type uniformLocations struct {
	model, view, projection, normalToWorld int32
	viewPos                                int32
	lights                                 [lightCount]lightLocations
	materialDiffuse, materialSpecular      int32
	materialShininess                      int32
}

func lightUniformName(i int, field string) string {
	return fmt.Sprintf("lights[%d].%s", i, field)
}

func lookupUniforms(program uint32, logger Logger) uniformLocations {
	get := func(name string) int32 {
		loc := gl.GetUniformLocation(program, gl.Str(name+"\x00"))
		if loc < 0 {
			logger.Debugf("uniform %q is not active in program %d", name, program)
		}
		return loc
	}

	loc := uniformLocations{
		model:             get("model"),
		view:              get("view"),
		projection:        get("projection"),
		normalToWorld:     get("normal_to_world"),
		viewPos:           get("view_pos"),
		materialDiffuse:   get("material.diffuse"),
		materialSpecular:  get("material.specular"),
		materialShininess: get("material.shininess"),
	}
	for i := range loc.lights {
		loc.lights[i] = lightLocations{
			position: get(lightUniformName(i, "position")),
			ambient:  get(lightUniformName(i, "ambient")),
			diffuse:  get(lightUniformName(i, "diffuse")),
			specular: get(lightUniformName(i, "specular")),
		}
	}
	return loc
}

// upload sends one frame's uniforms. The program must be in use.
func (loc *uniformLocations) upload(frame *Frame, scene *SceneConfig) {
	gl.UniformMatrix4fv(loc.projection, 1, false, &frame.Projection[0])
	gl.UniformMatrix4fv(loc.view, 1, false, &frame.View[0])
	gl.UniformMatrix4fv(loc.model, 1, false, &frame.Model[0])
	gl.UniformMatrix3fv(loc.normalToWorld, 1, false, &frame.Normal[0])

	for i := range scene.Lights {
		light := &scene.Lights[i]
		gl.Uniform3fv(loc.lights[i].position, 1, &light.Position[0])
		gl.Uniform3fv(loc.lights[i].ambient, 1, &light.Ambient[0])
		gl.Uniform3fv(loc.lights[i].diffuse, 1, &light.Diffuse[0])
		gl.Uniform3fv(loc.lights[i].specular, 1, &light.Specular[0])
	}

	gl.Uniform1i(loc.materialDiffuse, scene.Material.DiffuseUnit)
	gl.Uniform1i(loc.materialSpecular, scene.Material.SpecularUnit)
	gl.Uniform1f(loc.materialShininess, scene.Material.Shininess)

	gl.Uniform3fv(loc.viewPos, 1, &scene.Camera.Position[0])
}
