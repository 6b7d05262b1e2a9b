/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
)

const favicon = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">` +
	`<rect width="100" height="100" rx="20" fill="#2b2d42"/>` +
	`<circle cx="38" cy="50" r="22" fill="#ffffff"/>` +
	`<path d="M58 30 Q88 50 62 80 Q76 50 58 30Z" fill="#ffe066"/></svg>`

func getFavicon(cfg *Config) string {
	return `<link rel="icon" type="image/svg+xml" href="` + cfg.prefix + `/favicon.svg">
	<meta name="theme-color" content="#2b2d42">`
}

func serveFavicon(cfg *Config, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("Expires", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Header().Set("Content-Length", strconv.Itoa(len(favicon)))
		securityHeaders(cfg, w)

		_, err := w.Write([]byte(favicon))
		if err != nil {
			errs <- err

			return
		}
	}
}
