package style

// 颜色名称
const (
	ColorPrimary = "primary"
	ColorDeep    = "deep"
	ColorGlow    = "glow"
	ColorSoft    = "soft"
	ColorIce     = "ice"
	ColorGlass   = "glass"
	ColorAccent  = "accent"
	ColorWhite   = "white"
	ColorMuted   = "muted"
	ColorSuccess = "success"
	ColorError   = "error"
	ColorWarning = "warning"
	ColorLive    = "live"
	// ColorText 打印页面上的主文字颜色
	ColorText = "text"
)

// 字号角色
const (
	SizeDisplay      = "display"
	SizeDisplaySmall = "display-small"
	SizeSubtitle     = "subtitle"
	SizeHeadline     = "headline"
	SizeTitle        = "title"
	SizeBullet       = "bullet"
	SizeBody         = "body"
	SizeLabel        = "label"
	SizeCaption      = "caption"
)

// Defaults 返回内置的蓝色光环主题
func Defaults() []Token {
	return []Token{
		Color(ColorPrimary, "0066FF"),
		Color(ColorDeep, "0A1628"),
		Color(ColorGlow, "00A3FF"),
		Color(ColorSoft, "1A3A5C"),
		Color(ColorIce, "E0F4FF"),
		Color(ColorGlass, "1E3A5F"),
		Color(ColorAccent, "00D4FF"),
		Color(ColorWhite, "FFFFFF"),
		Color(ColorMuted, "B8C5D9"),
		Color(ColorSuccess, "00FF7F"),
		Color(ColorError, "FF3B30"),
		Color(ColorWarning, "FFD700"),
		Color(ColorLive, "FF416C"),
		Color(ColorText, "0A1628"),

		// 深色界面上的文字层级
		TranslucentColor("text-primary", "FFFFFF", 95),
		TranslucentColor("text-secondary", "FFFFFF", 70),
		TranslucentColor("text-muted", "FFFFFF", 50),
		TranslucentColor("text-disabled", "FFFFFF", 30),

		Size(SizeDisplay, 36),
		Size(SizeDisplaySmall, 24),
		Size(SizeSubtitle, 20),
		Size(SizeHeadline, 18),
		Size(SizeTitle, 14),
		Size(SizeBullet, 12),
		Size(SizeBody, 11),
		Size(SizeLabel, 10),
		Size(SizeCaption, 9),

		Spacing("space-xxs", 2),
		Spacing("space-xs", 4),
		Spacing("space-sm", 8),
		Spacing("space-md", 12),
		Spacing("space-lg", 16),
		Spacing("space-xl", 20),
		Spacing("space-xxl", 24),
		Spacing("space-xxxl", 32),
		Spacing("space-huge", 48),

		Radius("radius-xs", 4),
		Radius("radius-sm", 8),
		Radius("radius-md", 12),
		Radius("radius-lg", 16),
		Radius("radius-xl", 20),
		Radius("radius-xxl", 24),
		Radius("radius-xxxl", 32),
		Radius("radius-round", 9999),
	}
}
