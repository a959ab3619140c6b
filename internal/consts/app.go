package consts

const (
	ApplicationName    = "PixelVault"
	ApplicationVersion = "1.2.0"
)
