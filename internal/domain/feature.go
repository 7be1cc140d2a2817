package domain

// Feature описывает опциональную возможность, включаемую тегом в метаданных
// продукта биллинга. Доступ даётся, если значение по ключу MetadataKey
// равно строке "true" хотя бы у одной действующей подписки.
type Feature struct {
	// MetadataKey ключ в метаданных продукта
	MetadataKey string
	// GrantedMessage сообщение при предоставлении доступа
	GrantedMessage string
	// DeniedMessage сообщение, если ни одна подписка не даёт доступ
	DeniedMessage string
	// NoSubscriptionMessage сообщение для пользователя без биллинга
	NoSubscriptionMessage string
	// ForwardProviderStatus пробрасывать ли HTTP-статус провайдера при ошибке
	// вместо фиксированного 400 (исторически поведение отличается по фичам)
	ForwardProviderStatus bool
}

// FeatureMetadataEnabled значение метаданных, включающее фичу.
// Сравнение строгое: "True" или нестроковое true доступ не дают.
const FeatureMetadataEnabled = "true"

// FeatureProxyAPI доступ к проксирующему API.
var FeatureProxyAPI = Feature{
	MetadataKey:           "proxy-api",
	GrantedMessage:        "Access granted to proxy API features.",
	DeniedMessage:         "Your subscription plan does not include proxy API features. Please upgrade to a proxy-api-enabled plan.",
	NoSubscriptionMessage: "No subscription found. Please subscribe to a plan with proxy API features.",
	ForwardProviderStatus: false,
}

// FeatureSERPAPI доступ к SERP API.
var FeatureSERPAPI = Feature{
	MetadataKey:           "serp-api",
	GrantedMessage:        "Your plan includes SERP API access.",
	DeniedMessage:         "Your current plan does not include SERP API access. Please upgrade your plan.",
	NoSubscriptionMessage: "No active subscription found for your account.",
	ForwardProviderStatus: true,
}

// FeatureAccess результат проверки доступа к фиче.
type FeatureAccess struct {
	HasAccess bool   `json:"has_access"`
	Message   string `json:"message"`
}
