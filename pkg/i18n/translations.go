package i18n

import (
	"context"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	p           *i18nPrinter
	defaultLang = language.Arabic
)

type i18nPrinter struct {
	printers map[language.Tag]*message.Printer
}

// the first tag is picked when nothing in Accept-Language matches.
var supportedTags = []language.Tag{
	language.Arabic,
	language.English,
}

var supported = language.NewMatcher(supportedTags)

func printerFromCtx(ctx context.Context) *message.Printer {
	lang := defaultLang
	if ctx != nil {
		if l, ok := ctx.Value(LANG).(language.Tag); ok {
			lang = l
		}
	}
	printer, exist := p.printers[lang]
	if exist {
		return printer
	}
	return p.printers[defaultLang]
}

func Sprintf(ctx context.Context, format string, a ...interface{}) string {
	return printerFromCtx(ctx).Sprintf(format, a...)
}

func init() {
	p = &i18nPrinter{}
	m := make(map[language.Tag]*message.Printer)
	for _, langTag := range supportedTags {
		switch langTag {
		case language.Arabic:
			initAr(langTag)
		case language.English:
			initEn(langTag)
		}
		m[langTag] = message.NewPrinter(langTag)
	}
	p.printers = m
}
