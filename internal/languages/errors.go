package languages

import (
	"errors"
	"fmt"
)

// ErrUnknownLanguage 是名称查找失败时的哨兵错误。
var ErrUnknownLanguage = errors.New("unknown language")

// UnknownLanguageError 携带无法识别的语言名称。
type UnknownLanguageError struct {
	Name string
}

func (e *UnknownLanguageError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownLanguage, e.Name)
}

// Is 让 errors.Is(err, ErrUnknownLanguage) 成立。
func (e *UnknownLanguageError) Is(target error) bool {
	return target == ErrUnknownLanguage
}
