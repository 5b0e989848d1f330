package constants

// DefaultRegionPolygon - желаемый район по умолчанию: Роттердам и ближайшие
// окрестности. Точки внешнего кольца в порядке (longitude, latitude).
// Переопределяется через REGION_POLYGON.
var DefaultRegionPolygon = [][2]float64{
	{4.365, 51.975},
	{4.560, 51.975},
	{4.600, 51.930},
	{4.560, 51.855},
	{4.380, 51.855},
	{4.340, 51.900},
}
