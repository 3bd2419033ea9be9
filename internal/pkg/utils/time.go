/*
 * @author: sun977
 * @date: 2026.02.09
 * @description: 时间工具包
 * @func: 提供耗时计算、时间格式化等常用工具函数
 */

package utils

import (
	"fmt"
	"time"
)

// 常用时间格式常量
const (
	// DateTimeFormat 标准日期时间格式 "2006-01-02 15:04:05"
	DateTimeFormat = "2006-01-02 15:04:05"
	// DateTimeMilliFormat 带毫秒的日期时间格式 "2006-01-02 15:04:05.000"
	DateTimeMilliFormat = "2006-01-02 15:04:05.000"
	// DateFormat 日期格式 "2006-01-02"
	DateFormat = "2006-01-02"
	// TimeFormat 时间格式 "15:04:05"
	TimeFormat = "15:04:05"
)

// ElapsedMilliseconds 计算两个时间点之间经过的整毫秒数
// 按秒差和微秒差两部分合并后换算，亚毫秒部分截断
// 参数: start - 起始时间, end - 结束时间
// 返回: 整毫秒耗时
func ElapsedMilliseconds(start, end time.Time) int64 {
	secDiff := end.Unix() - start.Unix()
	usecDiff := int64(end.Nanosecond()/1000) - int64(start.Nanosecond()/1000)
	return (secDiff*1000000 + usecDiff) / 1000
}

// ElapsedMillisecondsSince 计算从起始时间到当前经过的整毫秒数
// 参数: start - 起始时间
// 返回: 整毫秒耗时
func ElapsedMillisecondsSince(start time.Time) int64 {
	return ElapsedMilliseconds(start, time.Now())
}

// FormatDateTime 格式化时间为标准日期时间字符串
// 参数: t - 要格式化的时间
// 返回: 格式化后的字符串 "2006-01-02 15:04:05"
func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeFormat)
}

// GetCurrentDateTime 获取当前日期时间字符串
// 返回: 当前时间的标准格式字符串 "2006-01-02 15:04:05"
func GetCurrentDateTime() string {
	return time.Now().Format(DateTimeFormat)
}

// FormatDuration 格式化时间间隔为可读字符串
// 参数: d - 时间间隔
// 返回: 格式化后的字符串，如 "2天3小时4分钟5秒"
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = -d
	}

	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	var result string
	if days > 0 {
		result += fmt.Sprintf("%d天", days)
	}
	if hours > 0 {
		result += fmt.Sprintf("%d小时", hours)
	}
	if minutes > 0 {
		result += fmt.Sprintf("%d分钟", minutes)
	}
	if seconds > 0 || result == "" {
		result += fmt.Sprintf("%d秒", seconds)
	}

	return result
}
