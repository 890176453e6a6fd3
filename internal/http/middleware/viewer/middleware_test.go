package viewer

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	_ "time/tzdata"

	httpCtx "github.com/bornholm/pettymatters/internal/http/context"
	"github.com/bornholm/pettymatters/internal/localtime"
	"golang.org/x/text/language"
)

func TestMiddleware(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Fatalf("%+v", err)
	}

	type testCase struct {
		Name             string
		URL              string
		Cookies          []*http.Cookie
		AcceptLanguage   string
		ExpectedLocale   language.Tag
		ExpectedLocation string
		ExpectedCookies  []string
	}

	testCases := []testCase{
		{
			Name:             "defaults",
			URL:              "/",
			ExpectedLocale:   language.German,
			ExpectedLocation: "Europe/Paris",
		},
		{
			Name:             "accept language",
			URL:              "/",
			AcceptLanguage:   "en-GB,en;q=0.8",
			ExpectedLocale:   language.BritishEnglish,
			ExpectedLocation: "Europe/Paris",
		},
		{
			Name:             "cookies over accept language",
			URL:              "/",
			AcceptLanguage:   "en-GB",
			Cookies:          []*http.Cookie{{Name: LocaleCookie, Value: "ja"}, {Name: TimezoneCookie, Value: "Asia/Tokyo"}},
			ExpectedLocale:   language.Japanese,
			ExpectedLocation: "Asia/Tokyo",
		},
		{
			Name:             "query over cookies",
			URL:              "/?lang=fr&tz=America/New_York",
			Cookies:          []*http.Cookie{{Name: LocaleCookie, Value: "ja"}, {Name: TimezoneCookie, Value: "Asia/Tokyo"}},
			ExpectedLocale:   language.French,
			ExpectedLocation: "America/New_York",
			ExpectedCookies:  []string{LocaleCookie, TimezoneCookie},
		},
		{
			Name:             "wildcard accept language falls back to default",
			URL:              "/",
			AcceptLanguage:   "*",
			ExpectedLocale:   language.German,
			ExpectedLocation: "Europe/Paris",
		},
		{
			Name:             "unsupported accept language falls back to default",
			URL:              "/",
			AcceptLanguage:   "sw-KE",
			ExpectedLocale:   language.German,
			ExpectedLocation: "Europe/Paris",
		},
		{
			Name:             "unsupported query locale is not persisted",
			URL:              "/?lang=sw",
			ExpectedLocale:   language.German,
			ExpectedLocation: "Europe/Paris",
		},
		{
			Name:             "unknown timezone ignored",
			URL:              "/?tz=Nowhere/Special",
			ExpectedLocale:   language.German,
			ExpectedLocation: "Europe/Paris",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			var formatter *localtime.Formatter

			handler := Middleware(
				WithDefaultLocale(language.German),
				WithDefaultLocation(paris),
			)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				formatter = httpCtx.Formatter(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, tc.URL, nil)
			if tc.AcceptLanguage != "" {
				req.Header.Set("Accept-Language", tc.AcceptLanguage)
			}
			for _, c := range tc.Cookies {
				req.AddCookie(c)
			}

			res := httptest.NewRecorder()

			handler.ServeHTTP(res, req)

			if formatter == nil {
				t.Fatalf("formatter: expected a formatter in the request context")
			}

			if e, g := tc.ExpectedLocale, formatter.Locale(); e != g {
				t.Errorf("formatter.Locale(): expected '%v', got '%v'", e, g)
			}

			if e, g := tc.ExpectedLocation, formatter.Location().String(); e != g {
				t.Errorf("formatter.Location(): expected '%v', got '%v'", e, g)
			}

			cookies := res.Result().Cookies()
			if e, g := len(tc.ExpectedCookies), len(cookies); e != g {
				t.Fatalf("len(cookies): expected '%v', got '%v'", e, g)
			}

			for i, name := range tc.ExpectedCookies {
				if e, g := name, cookies[i].Name; e != g {
					t.Errorf("cookies[%d].Name: expected '%v', got '%v'", i, e, g)
				}
			}
		})
	}
}
