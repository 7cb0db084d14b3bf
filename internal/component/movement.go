// component/movement.go
package component

// Position — компонент позиции в мировых координатах
type Position struct {
	X, Y, Z float64
}
