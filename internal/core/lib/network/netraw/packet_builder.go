package netraw

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"time"

	"golang.org/x/net/ipv4"
)

// ICMP 报文常量
const (
	ICMPTypeEchoReply   = 0
	ICMPTypeEchoRequest = 8
	ICMPHeaderLen       = 8
	EchoPayloadLen      = 56
)

// EchoMessage 解析后的 ICMP Echo 报文
type EchoMessage struct {
	Type    uint8
	Code    uint8
	ID      int
	Seq     int
	Payload []byte
}

// IsEchoReply 判断报文是否为 Echo Reply 且 ID/Seq 与请求匹配
// 回包按 ID 和 Seq 双重匹配，其他 ICMP 流量一律忽略
func (m *EchoMessage) IsEchoReply(id, seq int) bool {
	return m.Type == ICMPTypeEchoReply && m.Code == 0 && m.ID == id && m.Seq == seq
}

// Checksum 计算 16-bit One's Complement Checksum
func Checksum(data []byte) uint16 {
	var (
		sum    uint32
		length = len(data)
		index  int
	)

	for length > 1 {
		sum += uint32(binary.BigEndian.Uint16(data[index:]))
		index += 2
		length -= 2
	}

	if length > 0 {
		sum += uint32(uint8(data[index])) << 8
	}

	for (sum >> 16) > 0 {
		sum = (sum & 0xffff) + (sum >> 16)
	}

	return uint16(^sum)
}

// VerifyChecksum 校验含校验和字段的完整报文
// 对最终报文整体重新求和会折叠为 0xffff，取反即为 0
func VerifyChecksum(data []byte) bool {
	return Checksum(data) == 0
}

// BuildICMPEchoRequest 构建 ICMP Echo Request
func BuildICMPEchoRequest(id, seq int, payload []byte) ([]byte, error) {
	// Type(8), Code(0), Checksum(2), ID(2), Seq(2)
	h := make([]byte, ICMPHeaderLen)
	h[0] = ICMPTypeEchoRequest
	h[1] = 0 // Code 0

	binary.BigEndian.PutUint16(h[4:], uint16(id))
	binary.BigEndian.PutUint16(h[6:], uint16(seq))

	// Checksum (Header + Payload)
	var buf bytes.Buffer
	buf.Write(h)
	buf.Write(payload)

	checksum := Checksum(buf.Bytes())
	binary.BigEndian.PutUint16(h[2:], checksum)

	return append(h, payload...), nil
}

// BuildEchoRequestWithTimestamp 构建携带发送时间戳的 Echo Request
// 负载固定 56 字节，前 8 字节为发送时刻的 UnixNano（网络字节序），其余补零
// RTT 由回包负载中的时间戳与接收时刻计算
func BuildEchoRequestWithTimestamp(id, seq int, sentAt time.Time) ([]byte, error) {
	payload := make([]byte, EchoPayloadLen)
	binary.BigEndian.PutUint64(payload[0:8], uint64(sentAt.UnixNano()))
	return BuildICMPEchoRequest(id, seq, payload)
}

// EchoPayloadTimestamp 从 Echo 负载中取出发送时间戳
func EchoPayloadTimestamp(payload []byte) (time.Time, bool) {
	if len(payload) < 8 {
		return time.Time{}, false
	}
	nanos := binary.BigEndian.Uint64(payload[0:8])
	if nanos == 0 {
		return time.Time{}, false
	}
	return time.Unix(0, int64(nanos)), true
}

// ParseEchoReply 从包含 IPv4 头部的原始报文中解析 ICMP 报文
// 原始套接字收到的是完整 IP 数据报，先解析 IP 头定位 ICMP 起始位置
func ParseEchoReply(datagram []byte) (*EchoMessage, error) {
	hdr, err := ipv4.ParseHeader(datagram)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ipv4 header: %w", err)
	}

	if hdr.Len < ipv4.HeaderLen || len(datagram) < hdr.Len+ICMPHeaderLen {
		return nil, fmt.Errorf("datagram too short: %d bytes", len(datagram))
	}

	msg := datagram[hdr.Len:]
	return &EchoMessage{
		Type:    msg[0],
		Code:    msg[1],
		ID:      int(binary.BigEndian.Uint16(msg[4:6])),
		Seq:     int(binary.BigEndian.Uint16(msg[6:8])),
		Payload: msg[ICMPHeaderLen:],
	}, nil
}
