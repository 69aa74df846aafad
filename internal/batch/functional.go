package batch

import "quizbank/internal/question"

func functional() []question.Record {
	return []question.Record{
		question.New("Invertir cadena", "Invierte una cadena sin usar reversed().", []string{"Slicing [::-1]"}, []string{"strings"}),
		question.New("Filtrar pares", "Filtra números pares de una lista.", []string{"filter()", "lambda"}, []string{"funcional", "listas"}),
		question.New("Map a cuadrados", "Eleva al cuadrado una lista de números.", []string{"map()", "lambda"}, []string{"funcional"}),
		question.New("Reduce suma", "Suma una lista usando functools.reduce.", []string{"reduce"}, []string{"funcional"}),
		question.New("Contar vocales", "Cuenta el número de vocales en un texto.", []string{"in", "lower"}, []string{"strings"}),
		question.New("Flatten", "Aplana una lista de listas.", []string{"sum(..., [])", "itertools.chain"}, []string{"listas"}),
		question.New("Únicos", "Elimina duplicados preservando orden.", []string{"dict.fromkeys"}, []string{"listas"}),
		question.New("Componer funciones", "Compón dos funciones f y g y aplícalas a una lista.", []string{"higher-order"}, []string{"funcional"}),
		question.New("Validar email", "Valida un email simple por regex.", []string{"re"}, []string{"regex"}),
		question.New("Promedio por grupo", "Dada una lista de (grupo, valor) calcula promedio por grupo.", []string{"groupby"}, []string{"itertools"}),
	}
}
