package create_appointment

import "fmt"

// validateRequest валидирует входные данные запроса.
// Обязательны дата, время, имя клиента и телефон; формат даты и времени
// не проверяется, как и наличие слота в календаре доступности.
func validateRequest(req *Request) error {
	if req.InstanceID == "" {
		return fmt.Errorf("%w: instanceID is required", ErrInvalidInput)
	}
	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.Time == "" {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	if req.ClientName == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}
	if req.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	return nil
}
