package probe

// CatalogEntry 服务发现目录条目
type CatalogEntry struct {
	Port    int    `json:"port"`
	Service string `json:"service"`
}

// 服务发现使用的固定端口目录，顺序即结果输出顺序
var defaultCatalog = []CatalogEntry{
	{22, "SSH"},
	{23, "Telnet"},
	{25, "SMTP"},
	{53, "DNS"},
	{80, "HTTP"},
	{110, "POP3"},
	{143, "IMAP"},
	{443, "HTTPS"},
	{3306, "MySQL"},
	{5432, "PostgreSQL"},
	{6379, "Redis"},
	{3389, "RDP"},
	{27017, "MongoDB"},
}

// DefaultCatalog 返回目录的副本，调用方可以安全增删
func DefaultCatalog() []CatalogEntry {
	out := make([]CatalogEntry, len(defaultCatalog))
	copy(out, defaultCatalog)
	return out
}
