package core

// TextureID names a texture the renderer has bound. The simulation only passes
// it through; it never loads or samples textures itself.
type TextureID string

// Texture handles used by the breakout entities.
const (
	TextureBlock      TextureID = "block"
	TextureBlockSolid TextureID = "block_solid"
	TexturePaddle     TextureID = "paddle"
	TextureBall       TextureID = "face"
	TextureParticle   TextureID = "particle"
)

// SpriteBatch is the render collaborator. Every drawable entity draws itself by
// handing its quad to the batch once per frame, after all logic has run.
type SpriteBatch interface {
	DrawSprite(tex TextureID, pos, size Vec2, rotate float64, color RGB)
}

// Power-up textures, one per kind.
const (
	TexturePowerUpSpeed       TextureID = "powerup_speed"
	TexturePowerUpSticky      TextureID = "powerup_sticky"
	TexturePowerUpPassThrough TextureID = "powerup_passthrough"
	TexturePowerUpPadSize     TextureID = "powerup_increase"
	TexturePowerUpConfuse     TextureID = "powerup_confuse"
	TexturePowerUpChaos       TextureID = "powerup_chaos"
)
