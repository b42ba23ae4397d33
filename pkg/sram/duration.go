package sram

import (
	"fmt"
	"time"
)

// フレーム単位の時間定数（60フレーム/秒）
const (
	FramesPerSecond = 60
	FramesPerMinute = FramesPerSecond * 60
	FramesPerHour   = FramesPerMinute * 60
)

// FormatFrames はフレーム数を HH:MM:SS.FF 形式に変換します。
// 時は2桁に満たない場合のみゼロ埋めします。
func FormatFrames(frames uint32) string {
	hours := frames / FramesPerHour
	rem := frames % FramesPerHour
	minutes := rem / FramesPerMinute
	rem %= FramesPerMinute
	seconds := rem / FramesPerSecond
	rem %= FramesPerSecond

	return fmt.Sprintf("%02d:%02d:%02d.%02d", hours, minutes, seconds, rem)
}

// FramesToDuration はフレーム数を time.Duration に変換します
func FramesToDuration(frames uint32) time.Duration {
	return time.Duration(frames) * time.Second / FramesPerSecond
}
