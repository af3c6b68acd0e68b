package utils

import "time"

const (
	Period = time.Second / 60 // ~16.6ms frame cadence

	FieldWidth  = 640
	FieldHeight = 480

	WinningScore = 5

	PaddleWidth      = 8
	PaddleHeight     = 128
	PaddleSpeed      = 200
	PaddleFieldRatio = 6 // paddle section is 1/6 of the field width

	BallSizeRatio      = 40 //INFO 640/40 = 16 unit ball on the default field
	BallStartSpeed     = 300
	BallHitSpeedFactor = 1.1

	BounceSpreadDegrees = 90 // outgoing paddle angle spans (nd-0.5)*90
	LaunchSpreadDegrees = 80
	LaunchSkewDegrees   = 10

	// MaxVelocityComponent saturates integer velocity components. The scalar
	// ball speed keeps compounding past it.
	MaxVelocityComponent = 1 << 30

	CountdownTick    = 600 * time.Millisecond
	InputHoldTimeout = 500 * time.Millisecond

	LogDir     = "logs"
	LogFile    = "duopong.log"
	MaxLogSize = 10 * 1024 * 1024
)

var CountdownLabels = []string{"3", "2", "1", "GO"}
