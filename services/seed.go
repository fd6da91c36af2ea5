package services

import "github.com/yeremiapane/restaurant-ordering/models"

// DefaultMenu is the fixture inserted by Seed.
func DefaultMenu() []models.Document {
	return []models.Document{
		{"name": "Margherita Pizza", "description": "Classic with fresh mozzarella, basil, and tomatoes", "price": 11.99, "category": "Pizza", "image": "https://images.unsplash.com/photo-1548365328-9f547fb09520", "available": true},
		{"name": "Pepperoni Pizza", "description": "Loaded with pepperoni and cheese", "price": 13.49, "category": "Pizza", "image": "https://images.unsplash.com/photo-1601924582971-b0c5be3eebc9", "available": true},
		{"name": "Veggie Burger", "description": "Grilled veggie patty with avocado", "price": 9.99, "category": "Burgers", "image": "https://images.unsplash.com/photo-1550547660-d9450f859349", "available": true},
		{"name": "Cheeseburger", "description": "Beef patty, cheddar, pickles, house sauce", "price": 10.99, "category": "Burgers", "image": "https://images.unsplash.com/photo-1551782450-17144c3a8f59", "available": true},
		{"name": "Caesar Salad", "description": "Romaine, parmesan, croutons, creamy dressing", "price": 8.49, "category": "Salads", "image": "https://images.unsplash.com/photo-1551183053-bf91a1d81141", "available": true},
		{"name": "Lemonade", "description": "Freshly squeezed, lightly sweetened", "price": 3.49, "category": "Drinks", "image": "https://images.unsplash.com/photo-1497534547324-0ebb3f052e88", "available": true},
	}
}
