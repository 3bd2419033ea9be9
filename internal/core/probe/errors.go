package probe

import "errors"

// 探测入口的参数与环境错误
// 超时不在此列，它是结论值而不是错误，出现在结果的 Outcome/Detail 里
var (
	ErrInvalidTarget         = errors.New("invalid target address")
	ErrInvalidPort           = errors.New("invalid port")
	ErrRawChannelUnavailable = errors.New("raw channel unavailable")
)
