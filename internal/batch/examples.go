package batch

import "quizbank/internal/question"

type exampleRow struct {
	title  string
	prompt string
	hints  []string
	tags   []string
}

var exampleRows = []exampleRow{
	{"Suma dos números", "Escribe `suma(a, b)` que devuelva a + b",
		[]string{"Usa operadores aritméticos", "Devuelve el resultado"},
		[]string{"funciones", "aritmética"}},
	{"Factorial recursivo", "Implementa `factorial(n)` de forma recursiva",
		[]string{"Caso base: factorial(0) = 1", "Caso recursivo: n * factorial(n-1)"},
		[]string{"recursión", "matemáticas"}},
	{"Palíndromo", "Verifica si una palabra es palíndromo",
		[]string{"Compara primero con último carácter", "Puedes usar slicing [::-1]"},
		[]string{"strings", "algoritmos"}},
	{"Contar vocales", "Cuenta las vocales en un string",
		[]string{"Itera sobre cada carácter", "Usa una lista de vocales"},
		[]string{"strings", "bucles"}},
	{"Ordenar lista", "Implementa un algoritmo de ordenamiento",
		[]string{"Puedes usar bubble sort", "O investigar otros algoritmos"},
		[]string{"algoritmos", "ordenamiento"}},
	{"Fibonacci", "Genera la secuencia de Fibonacci",
		[]string{"Usa recursión o iteración", "Fibonacci(0)=0, Fibonacci(1)=1"},
		[]string{"matemáticas", "secuencias"}},
	{"Máximo común divisor", "Calcula el MCD de dos números",
		[]string{"Usa el algoritmo de Euclides", "MCD(a, 0) = a"},
		[]string{"matemáticas", "algoritmos"}},
	{"Invertir lista", "Invierte el orden de una lista",
		[]string{"Puedes usar slicing", "O un bucle for inverso"},
		[]string{"listas", "algoritmos"}},
	{"Contar palabras", "Cuenta palabras en un texto",
		[]string{"Usa split() para dividir el texto", "Cuenta los elementos resultantes"},
		[]string{"strings", "procesamiento de texto"}},
	{"Filter pares", "Filtra números pares de una lista",
		[]string{"Usa filter con lambda", "O comprensión de listas"},
		[]string{"funciones", "filter", "lambda"}},
}

func examples() []question.Record {
	records := make([]question.Record, 0, len(exampleRows))
	for _, row := range exampleRows {
		records = append(records, question.New(row.title, row.prompt, row.hints, row.tags))
	}
	return records
}
