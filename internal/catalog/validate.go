package catalog

import (
	"net"
	"net/url"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Schemes accepted by the weburl rule.
var webSchemes = map[string]bool{"http": true, "https": true, "ftp": true, "ftps": true}

var isoDuration = regexp.MustCompile(`^P(?:\d+Y)?(?:\d+M)?(?:\d+W)?(?:\d+D)?(?:T(?:\d+H)?(?:\d+M)?(?:\d+(?:[.,]\d+)?S)?)?$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	mustRegister(v, "weburl", webURL(v))
	mustRegister(v, "iso8601duration", isISODuration)
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// webURL accepts absolute http, https, ftp and ftps URLs without whitespace
// whose host is a domain name with a TLD, localhost or an IP address, on an
// optional port in 1-65535.
func webURL(v *validator.Validate) validator.Func {
	return func(fl validator.FieldLevel) bool {
		raw := fl.Field().String()
		if strings.IndexFunc(raw, unicode.IsSpace) >= 0 {
			return false
		}
		u, err := url.Parse(raw)
		if err != nil || !webSchemes[strings.ToLower(u.Scheme)] {
			return false
		}
		if port := u.Port(); port != "" {
			n, err := strconv.Atoi(port)
			if err != nil || n < 1 || n > 65535 {
				return false
			}
		}
		host := u.Hostname()
		switch {
		case host == "":
			return false
		case strings.EqualFold(host, "localhost"), net.ParseIP(host) != nil:
			return true
		}
		return v.Var(host, "fqdn") == nil
	}
}

func isISODuration(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "P" || strings.HasSuffix(s, "T") {
		return false
	}
	return isoDuration.MatchString(s)
}

func kindOf(fe validator.FieldError) ErrorKind {
	switch fe.Tag() {
	case "required":
		return KindRequired
	case "max":
		if fe.Kind() == reflect.String {
			return KindMaxLength
		}
		return KindRange
	case "gte", "lte", "min":
		return KindRange
	case "weburl":
		return KindURL
	case "email":
		return KindEmail
	case "oneof":
		return KindChoice
	case "iso8601duration":
		return KindFormat
	}
	return KindInvalid
}
