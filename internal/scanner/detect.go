package scanner

import (
	"bytes"
	"path/filepath"

	"github.com/go-enry/go-enry/v2"

	"gotokei/internal/languages"
)

// sniffSize 是检测二进制与 shebang 时读取的文件头长度。
const sniffSize = 8 << 10

// detectLanguage 依次按文件名/后缀、shebang、go-enry 识别语言。
// head 是文件开头最多 sniffSize 字节。
func detectLanguage(path string, head []byte) (languages.LanguageType, bool) {
	if lang, ok := languages.FromPath(path); ok {
		return lang, true
	}

	if bytes.HasPrefix(head, []byte("#!")) {
		firstLine, _, _ := bytes.Cut(head, []byte("\n"))
		if lang, ok := languages.FromShebang(string(firstLine)); ok {
			return lang, true
		}
	}

	return enryLanguage(filepath.Base(path), head)
}

// enryLanguage 只采用 go-enry 中结论确定的策略（modeline、文件名、后缀、内容规则），
// 不使用贝叶斯分类器，避免把任意无后缀文本猜成某种语言。
func enryLanguage(base string, head []byte) (languages.LanguageType, bool) {
	candidates := make([]string, 0, 4)
	if name, safe := enry.GetLanguageByModeline(head); safe {
		candidates = append(candidates, name)
	}
	if name, safe := enry.GetLanguageByFilename(base); safe {
		candidates = append(candidates, name)
	}
	if name, safe := enry.GetLanguageByExtension(base); safe {
		candidates = append(candidates, name)
	}
	if name, safe := enry.GetLanguageByContent(base, head); safe {
		candidates = append(candidates, name)
	}

	for _, name := range candidates {
		if lang, ok := languages.Lookup(name); ok {
			return lang, true
		}
	}
	return 0, false
}

// isBinary 使用 go-enry 的启发式判断（NUL 字节等）。
func isBinary(head []byte) bool {
	return enry.IsBinary(head)
}
