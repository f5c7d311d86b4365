package infra

// RedisNamespace — базовый префикс для изоляции данных проекта в Redis.
const RedisNamespace = "mrfashion"

// Ключи кэша каталога.
const (
	// RedisKeyCatalogFacets — закэшированные distinct-множества brand/category.
	// Инвалидируется (DEL) при любой мутации товаров.
	RedisKeyCatalogFacets = RedisNamespace + ":catalog:facets"
)
