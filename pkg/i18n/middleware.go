package i18n

import (
	"context"

	"github.com/emicklei/go-restful/v3"
	"golang.org/x/text/language"
)

type CtxLang string

const LANG CtxLang = "lang"

// LangFromHeader matches an Accept-Language header value against the
// supported languages.
func LangFromHeader(header string) language.Tag {
	langs, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return defaultLang
	}
	_, idx, confidence := supported.Match(langs...)
	if confidence == language.No {
		return defaultLang
	}
	return supportedTags[idx]
}

func WithLang(ctx context.Context, lang language.Tag) context.Context {
	return context.WithValue(ctx, LANG, lang)
}

func SetLang(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	lang := LangFromHeader(req.HeaderParameter("Accept-Language"))
	req.Request = req.Request.WithContext(WithLang(req.Request.Context(), lang))
	chain.ProcessFilter(req, resp)
}
