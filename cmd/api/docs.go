package main

// @title Skycast API
// @version 1.0
// @description Weather lookup API. Geocodes a city name or accepts raw map coordinates, then returns current conditions and a five-day forecast from Open-Meteo.

// @contact.name Skycast
// @license.name MIT

// @host localhost:8080
// @BasePath /

// @tag.name weather
// @tag.description Weather report lookup

// @tag.name health
// @tag.description Service health
