package cruce

import (
	"regexp"
	"strconv"
)

// SinNumeroPlanilla clave de orden para planillas sin número inicial: van al
// final, después de todas las planillas numeradas del mismo ítem.
const SinNumeroPlanilla = 99999

var numeroInicialRe = regexp.MustCompile(`^\d+`)

// NumeroPlanilla extrae el número inicial del nombre de la planilla como clave
// de orden de consumo ("3-Planta A" se consume antes que "7-Planta B"). Si el
// nombre no empieza con dígitos devuelve SinNumeroPlanilla.
func NumeroPlanilla(nombre string) int {
	m := numeroInicialRe.FindString(nombre)
	if m == "" {
		return SinNumeroPlanilla
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return SinNumeroPlanilla
	}
	return n
}
