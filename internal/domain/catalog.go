package domain

// ServiceInfo услуга салона: тег, отображаемое название и длительность
type ServiceInfo struct {
	Tag             string
	Label           string
	DurationMinutes int
}

// serviceCatalog статический каталог услуг
// Порядок фиксирован - используется при отдаче формы бронирования
var serviceCatalog = []ServiceInfo{
	{Tag: "haircut", Label: "Стрижка", DurationMinutes: 60},
	{Tag: "beard", Label: "Борода", DurationMinutes: 30},
	{Tag: "combo", Label: "Стрижка+борода", DurationMinutes: 60},
}

// ServiceCatalog возвращает копию каталога услуг
func ServiceCatalog() []ServiceInfo {
	catalog := make([]ServiceInfo, len(serviceCatalog))
	copy(catalog, serviceCatalog)
	return catalog
}

// ServiceDuration возвращает длительность услуги в минутах
// Для неизвестного тега возвращает DefaultServiceDurationMinutes
func ServiceDuration(tag string) int {
	for _, s := range serviceCatalog {
		if s.Tag == tag {
			return s.DurationMinutes
		}
	}
	return DefaultServiceDurationMinutes
}

// ServiceLabel возвращает отображаемое название услуги
// Для неизвестного тега возвращает сам тег
func ServiceLabel(tag string) string {
	for _, s := range serviceCatalog {
		if s.Tag == tag {
			return s.Label
		}
	}
	return tag
}
