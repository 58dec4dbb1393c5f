package handlers

import (
	"net/http"
	"strconv"

	"canac/weather-api/internal/weathercode"

	"github.com/gorilla/mux"
)

func ListWeatherCodes(w http.ResponseWriter, _ *http.Request) {
	respondWithJSON(w, http.StatusOK, weathercode.All())
}

func GetWeatherCode(w http.ResponseWriter, r *http.Request) {
	code, err := strconv.Atoi(mux.Vars(r)["code"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "weather code must be an integer")
		return
	}

	description, ok := weathercode.Lookup(code)
	if !ok {
		respondWithError(w, http.StatusNotFound, "unknown weather code "+strconv.Itoa(code))
		return
	}

	respondWithJSON(w, http.StatusOK, description)
}
