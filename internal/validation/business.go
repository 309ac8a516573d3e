package validation

import "time"

// Registration validates the account payload shared by users and drivers.
func (v *Validator) Registration(name, email, phone, password string) {
	v.Required("name", name)
	v.MaxLength("name", name, MaxNameLength)
	v.Email("email", email)
	v.Phone("phone", phone)
	v.Password("password", password)
}

// Car validates a vehicle registration request.
func (v *Validator) Car(model, plate string, seats int) {
	v.Required("model", model)
	v.Plate("plate", plate)
	v.Range("seats", float64(seats), MinCarSeats, MaxCarSeats)
}

// TouristPoint validates a tourist point payload.
func (v *Validator) TouristPoint(name, city, state string) {
	v.Required("name", name)
	v.Required("city", city)
	v.Required("state", state)
}

// TourPackage validates a new package listing.
func (v *Validator) TourPackage(description string, price float64, seats int, tourDate time.Time) {
	v.MaxLength("description", description, MaxDescriptionLength)
	v.Positive("price", price)
	v.Range("seats", float64(seats), MinCarSeats, MaxCarSeats)
	v.Future("tour_date", tourDate)
}

// TopUp validates a wallet top-up request.
func (v *Validator) TopUp(amount float64) {
	v.Range("amount", amount, MinTopUpAmount, MaxTopUpAmount)
}
