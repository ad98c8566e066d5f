package spincube

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

var (
	whiteFallbackTexel = TextureAsset{texels: []uint8{255, 255, 255}, width: 1, height: 1}
	blackFallbackTexel = TextureAsset{texels: []uint8{0, 0, 0}, width: 1, height: 1}
)

// fallbackTexel stands in for a map that could not be loaded. A missing
// diffuse map leaves the faces lit in white; a missing specular map
// contributes no highlights.
func fallbackTexel(kind int) TextureAsset {
	if kind == specularMap {
		return blackFallbackTexel
	}
	return whiteFallbackTexel
}

// uploadTexture creates a 2D RGB texture with a full mipmap chain.
func uploadTexture(asset TextureAsset) uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	// RGB rows are not 4-byte aligned in general.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB, int32(asset.width), int32(asset.height), 0, gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(&asset.texels[0]))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texture
}
