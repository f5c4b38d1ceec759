package create_appointment

import "github.com/m04kA/SMC-SalonScheduler/internal/domain"

// Request модель запроса на создание записи
type Request struct {
	InstanceID string // Идентификатор инстанса (тенанта)
	Date       string // Дата записи (YYYY-MM-DD)
	Time       string // Время слота (HH:MM)
	ClientName string // Имя клиента
	Phone      string // Телефон клиента
	Status     string // Начальный статус (опционально)
	Image      string // Изображение (опционально)
	CouponCode string // Код купона для погашения (опционально)

	// IsAdminCreation true, если запись создает администратор.
	// Администраторские записи не участвуют в розыгрыше купонов.
	IsAdminCreation bool
}

// Response модель ответа с созданной записью
type Response struct {
	ID            int64               // Идентификатор записи
	Date          string              // Дата записи
	Time          string              // Время слота
	ClientName    string              // Имя клиента
	Phone         string              // Телефон клиента
	Status        string              // Статус
	Image         string              // Изображение
	CouponCode    string              // Погашенный купон
	AwardedCoupon *domain.CouponGrant // Подаренный купон (если выпал)
	Notes         []string            // Заметки (пустой список при создании)
}
