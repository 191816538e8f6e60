package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Little Lemon API. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

AUTH
- POST "/auth/signup" - Create user account
- POST "/auth/login" - Access user account
- POST "/auth/verify-email/:activationToken" - Activate user account
- POST "/auth/forgot-password" - Request password reset
- POST "/auth/reset-password/:resetToken" - Reset user password

MENU
- GET "/categories" - Get all categories
- POST "/categories" - Create a category (manager)
- GET "/menu-items" - Get all menu items
- POST "/menu-items" - Create a menu item (manager)
- GET "/menu-items/{id}" - Get menu item by ID
- PUT "/menu-items/{id}" - Update a menu item (manager)
- DELETE "/menu-items/{id}" - Delete a menu item (manager)
- POST "/menu-items/{id}/image" - Upload a menu item image (manager)

CART
- GET "/cart/menu-items" - Get your cart
- POST "/cart/menu-items" - Add a menu item to your cart
- DELETE "/cart/menu-items/{id}" - Remove a line from your cart

ORDERS
- POST "/orders" - Place an order from your cart
- GET "/orders" - Orders you may see (role dependent)
- GET "/orders/{id}" - Get order by ID
- PUT "/orders/{id}" - Assign delivery crew / set status (manager)
- PATCH "/orders/{id}" - Advance status (assigned delivery crew)
- DELETE "/orders/{id}" - Delete order (manager)
- GET "/orders/undelivered-count" - Orders still on the way (manager)

GROUPS (manager)
- GET/POST "/groups/manager/users" - List / add managers
- DELETE "/groups/manager/users/{id}" - Remove a manager
- GET/POST "/groups/delivery-crew/users" - List / add delivery crew
- DELETE "/groups/delivery-crew/users/{id}" - Remove delivery crew`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
