/**
 * 地址分类
 * @author: sun977
 * @date: 2026.02.12
 * @description: 传统分类（A~E）和地址种类（回环/私有/链路本地/组播/保留/公网）判定
 */

package netcalc

// Class 传统分类地址类别
type Class string

const (
	ClassA        Class = "A"
	ClassB        Class = "B"
	ClassC        Class = "C"
	ClassD        Class = "D"
	ClassE        Class = "E"
	ClassLoopback Class = "Loopback"
)

// Kind 地址种类
type Kind string

const (
	KindLoopback  Kind = "loopback"
	KindPrivate   Kind = "private"
	KindLinkLocal Kind = "link-local"
	KindMulticast Kind = "multicast"
	KindReserved  Kind = "reserved"
	KindPublic    Kind = "public"
)

// NetworkClass 按首八位组判定传统类别
// 127 单独报告为回环，0 按首位比特规则归入 A 类
func NetworkClass(ip uint32) Class {
	first := ip >> 24
	switch {
	case first == 127:
		return ClassLoopback
	case first < 128:
		return ClassA
	case first < 192:
		return ClassB
	case first < 224:
		return ClassC
	case first < 240:
		return ClassD
	default:
		return ClassE
	}
}

// AddressKind 按保留网段判定地址种类
// 回环 127/8，私有 10/8 + 172.16/12 + 192.168/16，链路本地 169.254/16，
// 组播 224/4，保留 240/4，其余视为公网
func AddressKind(ip uint32) Kind {
	switch {
	case ip>>24 == 127:
		return KindLoopback
	case ip>>24 == 10:
		return KindPrivate
	case ip&0xFFF00000 == 0xAC100000:
		return KindPrivate
	case ip>>16 == 0xC0A8:
		return KindPrivate
	case ip>>16 == 0xA9FE:
		return KindLinkLocal
	case ip>>28 == 0xE:
		return KindMulticast
	case ip>>28 == 0xF:
		return KindReserved
	default:
		return KindPublic
	}
}

// IsLoopback 是否回环地址 (127.0.0.0/8)
func IsLoopback(ip uint32) bool {
	return ip>>24 == 127
}

// Classification 单个地址的分类结果
type Classification struct {
	IP     uint32 `json:"-"`
	IPText string `json:"ip"`
	Class  Class  `json:"class"`
	Kind   Kind   `json:"kind"`
}

// Classify 给出地址的类别和种类
func Classify(ip uint32) Classification {
	return Classification{
		IP:     ip,
		IPText: FormatIPv4(ip),
		Class:  NetworkClass(ip),
		Kind:   AddressKind(ip),
	}
}

func (c Classification) Headers() []string {
	return []string{"Field", "Value"}
}

func (c Classification) Rows() [][]string {
	return [][]string{
		{"Address", c.IPText},
		{"Class", string(c.Class)},
		{"Kind", string(c.Kind)},
	}
}
