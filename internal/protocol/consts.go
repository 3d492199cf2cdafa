package protocol

// Маски кнопок AppCameraInput. Совпадают с InputState игры.
const (
	ButtonNone          int32 = 0
	ButtonForward       int32 = 2
	ButtonBackward      int32 = 4
	ButtonLeft          int32 = 8
	ButtonRight         int32 = 16
	ButtonJump          int32 = 32
	ButtonDuck          int32 = 64
	ButtonSprint        int32 = 128
	ButtonUse           int32 = 256
	ButtonFirePrimary   int32 = 1024
	ButtonFireSecondary int32 = 2048
	ButtonReload        int32 = 8192
)

// Контрольные флаги камеры из AppCameraInfo.ControlFlags.
const (
	ControlNone          int32 = 0
	ControlMovement      int32 = 1
	ControlRotation      int32 = 2
	ControlZoom          int32 = 4
	ControlSprintAndDuck int32 = 8
	ControlFire          int32 = 16
	ControlReload        int32 = 32
	ControlCrosshair     int32 = 64
)
