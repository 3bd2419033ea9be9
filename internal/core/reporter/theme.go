package reporter

import "github.com/pterm/pterm"

// 内置主题名
const (
	ThemeDefault = "default"
	ThemeOcean   = "ocean"
	ThemeMono    = "mono"
	ThemePlain   = "plain"
)

// Theme 控制台渲染主题
// 主题是显式传给渲染边界的配置值，进程里不存在全局可变的颜色状态
type Theme struct {
	Name           string
	HeaderStyle    *pterm.Style
	SeparatorStyle *pterm.Style
	SectionStyle   *pterm.Style
	SuccessStyle   *pterm.Style
	ErrorStyle     *pterm.Style
	Boxed          bool
}

// ThemeByName 按名称取内置主题，未知名称回退到 default
func ThemeByName(name string) Theme {
	switch name {
	case ThemeOcean:
		return Theme{
			Name:           ThemeOcean,
			HeaderStyle:    pterm.NewStyle(pterm.FgCyan, pterm.Bold),
			SeparatorStyle: pterm.NewStyle(pterm.FgBlue),
			SectionStyle:   pterm.NewStyle(pterm.FgLightCyan, pterm.Bold),
			SuccessStyle:   pterm.NewStyle(pterm.FgLightGreen, pterm.Bold),
			ErrorStyle:     pterm.NewStyle(pterm.FgLightRed, pterm.Bold),
			Boxed:          true,
		}
	case ThemeMono:
		return Theme{
			Name:           ThemeMono,
			HeaderStyle:    pterm.NewStyle(pterm.Bold),
			SeparatorStyle: pterm.NewStyle(),
			SectionStyle:   pterm.NewStyle(pterm.Bold),
			SuccessStyle:   pterm.NewStyle(pterm.Bold),
			ErrorStyle:     pterm.NewStyle(pterm.Bold),
		}
	case ThemePlain:
		// 空样式渲染为纯文本，适合管道和日志采集
		return Theme{
			Name:           ThemePlain,
			HeaderStyle:    pterm.NewStyle(),
			SeparatorStyle: pterm.NewStyle(),
			SectionStyle:   pterm.NewStyle(),
			SuccessStyle:   pterm.NewStyle(),
			ErrorStyle:     pterm.NewStyle(),
		}
	default:
		return Theme{
			Name:           ThemeDefault,
			HeaderStyle:    &pterm.ThemeDefault.TableHeaderStyle,
			SeparatorStyle: &pterm.ThemeDefault.TableSeparatorStyle,
			SectionStyle:   &pterm.ThemeDefault.SectionStyle,
			SuccessStyle:   &pterm.ThemeDefault.SuccessMessageStyle,
			ErrorStyle:     &pterm.ThemeDefault.ErrorMessageStyle,
		}
	}
}

// KnownThemes 配置校验用的主题名列表
func KnownThemes() []string {
	return []string{ThemeDefault, ThemeOcean, ThemeMono, ThemePlain}
}
