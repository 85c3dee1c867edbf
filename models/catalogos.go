package models

// Catálogos estables de la aplicación. Son listas fijas, no filas en BD.

// Tipos de gasto
const (
	TipoGastoFijo     = "Fijo"
	TipoGastoVariable = "Variable"
	TipoGastoMSI      = "MSI" // meses sin intereses
	TipoGastoMCI      = "MCI" // meses con intereses
)

// Categorías
const (
	CategoriaEgreso  = "E"
	CategoriaIngreso = "I"
)

// Tags de deuda entre personas
const (
	TagDebo     = "D"
	TagMeDeben  = "MD"
	TagNoAplica = "NA"
)

// TiposGasto devuelve el catálogo de tipos de gasto
func TiposGasto() []string {
	return []string{TipoGastoFijo, TipoGastoVariable, TipoGastoMSI, TipoGastoMCI}
}

// Categorias devuelve el catálogo de categorías (E=Egreso, I=Ingreso)
func Categorias() []string {
	return []string{CategoriaEgreso, CategoriaIngreso}
}

// FormasPago devuelve el catálogo de formas de pago
func FormasPago() []string {
	return []string{
		"BBVA Oro",
		"Klar Platino",
		"Mercado Pago",
		"Santander Free",
		"No aplica",
		"Efectivo",
		"Transferencia",
		"TDD NU",
		"TDC NU",
	}
}

// Meses devuelve los doce meses del año
func Meses() []string {
	return []string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
}

// Tags devuelve el catálogo de tags
func Tags() []string {
	return []string{TagDebo, TagMeDeben, TagNoAplica}
}

// TagLabels devuelve las descripciones de cada tag
func TagLabels() map[string]string {
	return map[string]string{
		TagDebo:     "Debo",
		TagMeDeben:  "Me deben",
		TagNoAplica: "No aplica",
	}
}

// GastosXMes devuelve las abreviaciones de mes válidas para gasto_x_mes
func GastosXMes() []string {
	return []string{
		"ENE", "FEB", "MAR", "ABR", "MAY", "JUN",
		"JUL", "AGO", "SEP", "OCT", "NOV", "DIC", "NA",
	}
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

// EsTipoGastoValido indica si el tipo de gasto pertenece al catálogo
func EsTipoGastoValido(tipo string) bool {
	return contains(TiposGasto(), tipo)
}

// EsCategoriaValida indica si la categoría pertenece al catálogo
func EsCategoriaValida(categoria string) bool {
	return contains(Categorias(), categoria)
}

// EsFormaPagoValida indica si la forma de pago pertenece al catálogo
func EsFormaPagoValida(forma string) bool {
	return contains(FormasPago(), forma)
}

// EsMesValido indica si el mes pertenece al catálogo
func EsMesValido(mes string) bool {
	return contains(Meses(), mes)
}

// EsTagValido indica si el tag pertenece al catálogo
func EsTagValido(tag string) bool {
	return contains(Tags(), tag)
}

// EsGastoXMesValido indica si la abreviación de mes pertenece al catálogo
func EsGastoXMesValido(valor string) bool {
	return contains(GastosXMes(), valor)
}
