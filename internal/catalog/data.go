package catalog

import "acacia-lounge/internal/models"

// allDrinks is the full Acacia Lounge menu. IDs are stable: each category
// starts on a new block of 30 so new drinks can be appended without
// renumbering.
var allDrinks = []*models.Drink{
	// Cocktails
	{ID: 1, Name: "Mojito", Category: models.CategoryCocktails, Price: 650, Description: "Our signature cocktail with a blend of tropical flavors", Image: "images/drinks/cocktails/mojito.jpg"},
	{ID: 2, Name: "Tequila Sunrise", Category: models.CategoryCocktails, Price: 550, Description: "A refreshing mix of vodka and tropical juices", Image: "images/drinks/cocktails/tequilla sunrise.jpg"},
	{ID: 3, Name: "Pina Colada", Category: models.CategoryCocktails, Price: 700, Description: "A sophisticated blend of gin and berry flavors", Image: "images/drinks/cocktails/pina colada.jpg"},
	{ID: 4, Name: "Safari Martini", Category: models.CategoryCocktails, Price: 750, Description: "Classic martini with an African twist", Image: "images/drinks/cocktails/c1.jpg"},
	{ID: 5, Name: "Margarita", Category: models.CategoryCocktails, Price: 600, Description: "Kenyan twist on the classic Moscow mule", Image: "images/drinks/cocktails/margarita.jpg"},
	{ID: 6, Name: "Tusker Twist", Category: models.CategoryCocktails, Price: 580, Description: "Cocktail inspired by Kenya's favorite beer", Image: "images/drinks/cocktails/tequilla sunrise.jpg"},
	{ID: 7, Name: "Daiquiri", Category: models.CategoryCocktails, Price: 500, Description: "Traditional Kenyan cocktail meaning 'medicine'", Image: "images/drinks/cocktails/daiquiri.jpg"},
	{ID: 8, Name: "Cosmopolitan", Category: models.CategoryCocktails, Price: 550, Description: "Refreshing mojito with coastal flavors", Image: "images/drinks/cocktails/cosmopolitan.jpg"},
	{ID: 9, Name: "Long Island Iced Tea", Category: models.CategoryCocktails, Price: 650, Description: "Beautifully layered cocktail inspired by African sunsets", Image: "images/drinks/cocktails/Long Island Iced Tea.jpg"},
	{ID: 10, Name: "Kilimanjaro Cooler", Category: models.CategoryCocktails, Price: 680, Description: "Tall refreshing cocktail with mountain-inspired flavors", Image: "images/drinks/cocktails/Kilimanjaro Cooler.jpg"},
	{ID: 11, Name: "Rift Valley Refresher", Category: models.CategoryCocktails, Price: 520, Description: "Light and citrusy cocktail perfect for warm days", Image: "images/drinks/cocktails/Rift Valley Refresher.jpg"},

	// Beers
	{ID: 31, Name: "Tusker Lager", Category: models.CategoryBeers, Price: 300, Description: "Kenya's iconic beer since 1922, known for its clean and crisp taste.", Image: "images/drinks/beer/tusker.jpg"},
	{ID: 32, Name: "Tusker Malt", Category: models.CategoryBeers, Price: 320, Description: "A premium, smoother version of the classic Tusker with a rich malty flavor.", Image: "images/drinks/beer/Tusker Malt.jpg"},
	{ID: 33, Name: "White Cap", Category: models.CategoryBeers, Price: 280, Description: "A crisp, full-bodied lager known for its balanced taste and distinctive label.", Image: "images/drinks/beer/White Cap.jpg"},
	{ID: 34, Name: "Pilsner Ice", Category: models.CategoryBeers, Price: 290, Description: "A smooth and easy-drinking pale lager that is clear and bright.", Image: "images/drinks/beer/Pilsner Ice.jpg"},
	{ID: 35, Name: "Balozi", Category: models.CategoryBeers, Price: 270, Description: "A crisp, refreshing Kenyan lager, often sold in cans (Balozi means 'Ambassador').", Image: "images/drinks/beer/Balozi.png"},
	{ID: 36, Name: "Guinness", Category: models.CategoryBeers, Price: 350, Description: "World-famous dry stout from Ireland, known for its dark color and creamy head.", Image: "images/drinks/beer/Guinness.jpg"},
	{ID: 37, Name: "Heineken", Category: models.CategoryBeers, Price: 330, Description: "An international pale lager known for its subtle fruit notes and balanced bitterness.", Image: "images/drinks/beer/Heineken.png"},
	{ID: 38, Name: "Corona Extra", Category: models.CategoryBeers, Price: 380, Description: "A popular pale lager from Mexico, traditionally served with a wedge of lime or lemon.", Image: "images/drinks/beer/Corona Extra.jpg"},
	{ID: 39, Name: "Budweiser", Category: models.CategoryBeers, Price: 320, Description: "An American-style pale lager, known as the 'King of Beers,' with a light, crisp flavor.", Image: "images/drinks/beer/Budweiser.jpg"},
	{ID: 40, Name: "Stella Artois", Category: models.CategoryBeers, Price: 360, Description: "A classic Belgian pilsner, known for its light gold color and sophisticated, clean finish.", Image: "images/drinks/beer/Stella Artois.jpg"},

	// Wines
	{ID: 61, Name: "4th Street Sweet Red", Category: models.CategoryWines, Price: 1200, Description: "A popular, easy-drinking sweet red wine from South Africa, known for its fruity finish.", Image: "images/drinks/wines/4th Street Sweet Red.jfif"},
	{ID: 62, Name: "Robertson Sweet White", Category: models.CategoryWines, Price: 1100, Description: "Robertson Winery's sweet white, offering tropical fruit aromas and a naturally sweet finish.", Image: "images/drinks/wines/Robertson Sweet White.jfif"},
	{ID: 63, Name: "Drostdy-Hof Claret Select", Category: models.CategoryWines, Price: 1150, Description: "A smooth, medium-bodied red blend from South Africa with rich berry flavours.", Image: "images/drinks/wines/Drostdy-Hof Claret Select.jfif"},
	{ID: 64, Name: "Frontera Cabernet Sauvignon", Category: models.CategoryWines, Price: 1300, Description: "A dry, full-bodied Cabernet Sauvignon from Chile with notes of dark fruit and vanilla.", Image: "images/drinks/wines/Frontera Cabernet Sauvignonc.jfif"},
	{ID: 65, Name: "Nederburg Rosé", Category: models.CategoryWines, Price: 1400, Description: "A light, crisp South African Rosé with fresh strawberry and floral notes.", Image: "images/drinks/wines/Nederburg Rosé.jfif"},
	{ID: 66, Name: "4th Street Rosé", Category: models.CategoryWines, Price: 2500, Description: "A vibrant, refreshing sweet rosé wine from South Africa with a fruity bouquet.", Image: "images/drinks/wines/4th Street Rosé.jfif"},
	{ID: 67, Name: "Robertson Natural Sweet Red", Category: models.CategoryWines, Price: 2800, Description: "Robertson Winery's famous sweet red, enjoyed chilled, with soft, ripe berry flavours.", Image: "images/drinks/wines/Robertson Natural Sweet Red.jfif"},
	{ID: 68, Name: "Drostdy-Hof Extra Light", Category: models.CategoryWines, Price: 1600, Description: "A delicate, naturally sweet white wine from Drostdy-Hof, lower in alcohol.", Image: "images/drinks/wines/Drostdy-Hof Extra Light.jfif"},

	// Spirits
	{ID: 91, Name: "Gilbey's Gin", Category: models.CategorySpirits, Price: 850, Description: "A classic London Dry Gin, known for its balanced blend of botanicals.", Image: "images/drinks/spirits/Gilbey's Gin.jpg"},
	{ID: 92, Name: "Smirnoff Vodka", Category: models.CategorySpirits, Price: 900, Description: "A world-renowned triple-distilled vodka, famous for its purity and smoothness.", Image: "images/drinks/spirits/Smirnoff Vodka.jfif"},
	{ID: 93, Name: "Johnnie Walker Black Label", Category: models.CategorySpirits, Price: 1200, Description: "A premium 12-year-old blended Scotch whisky, rich, deep, and complex.", Image: "images/drinks/spirits/Johnnie Walker Black Label.jfif"},
	{ID: 94, Name: "Johnnie Walker Red", Category: models.CategorySpirits, Price: 1500, Description: "The world's best-selling Scotch whisky, famous for its bold, vibrant flavour.", Image: "images/drinks/spirits/Johnnie Walker Red.jfif"},
	{ID: 95, Name: "Jack Daniel's", Category: models.CategorySpirits, Price: 1800, Description: "Old No. 7 Tennessee Whiskey, charcoal mellowed for a signature smooth finish.", Image: "images/drinks/spirits/Jack Daniel's.jfif"},
	{ID: 96, Name: "Absolut Vodka", Category: models.CategorySpirits, Price: 800, Description: "A clean, full-bodied Swedish premium vodka, continuously distilled for purity.", Image: "images/drinks/spirits/Absolut Vodka.jfif"},
	{ID: 97, Name: "Captain Morgan", Category: models.CategorySpirits, Price: 1300, Description: "A popular spiced rum, distilled from molasses and flavoured with spices.", Image: "images/drinks/spirits/Captain Morgan.jfif"},
	{ID: 98, Name: "Chrome Vodka", Category: models.CategorySpirits, Price: 950, Description: "A smooth, crisp, and affordable vodka brand, popular in East Africa.", Image: "images/drinks/spirits/Chrome Vodka.jfif"},
	{ID: 99, Name: "Kenya Cane", Category: models.CategorySpirits, Price: 1000, Description: "A proudly Kenyan cane spirit, famously smooth and versatile for mixing.", Image: "images/drinks/spirits/Kenya Cane.jfif"},

	// Sodas
	{ID: 121, Name: "Coca-Cola", Category: models.CategorySodas, Price: 120, Description: "The original and iconic carbonated soft drink.", Image: "images/drinks/sodas/Coca-Cola.jfif"},
	{ID: 122, Name: "Fanta Orange", Category: models.CategorySodas, Price: 120, Description: "A bright, bubbly, and sweet sparkling orange-flavored drink.", Image: "images/drinks/sodas/Fanta Orange.jfif"},
	{ID: 123, Name: "Sprite", Category: models.CategorySodas, Price: 120, Description: "A refreshing, caffeine-free lemon-lime flavoured soda.", Image: "images/drinks/sodas/Sprite.jfif"},
	{ID: 124, Name: "Stoney Tangawizi", Category: models.CategorySodas, Price: 130, Description: "Kenya's famous ginger beer with a distinctive, fiery 'tangawizi' (ginger) bite.", Image: "images/drinks/sodas/Stoney Tangawizi.jfif"},
	{ID: 125, Name: "Krest Bitter Lemon", Category: models.CategorySodas, Price: 130, Description: "A crisp and tart bitter lemon soda, often used as a mixer.", Image: "images/drinks/sodas/Krest Bitter Lemon.jfif"},
	{ID: 126, Name: "Krest Tonic Water", Category: models.CategorySodas, Price: 130, Description: "Classic quinine-based tonic water, essential for Gin and Tonics.", Image: "images/drinks/sodas/Krest Tonic Water.jfif"},
	{ID: 127, Name: "Pepsi", Category: models.CategorySodas, Price: 120, Description: "A sweet and bubbly alternative to classic cola.", Image: "images/drinks/sodas/Pepsi.jfif"},
	{ID: 128, Name: "Mirinda", Category: models.CategorySodas, Price: 120, Description: "A popular, bright orange-flavoured carbonated soft drink.", Image: "images/drinks/sodas/Mirinda.jfif"},
	{ID: 129, Name: "Mountain Dew", Category: models.CategorySodas, Price: 130, Description: "A highly caffeinated, citrus-flavoured soda.", Image: "images/drinks/sodas/Mountain Dew.jfif"},
	{ID: 130, Name: "7UP", Category: models.CategorySodas, Price: 120, Description: "A clear, caffeine-free lemon-lime soda known for its clean taste.", Image: "images/drinks/sodas/7UP.jfif"},

	// Mocktails
	{ID: 151, Name: "Virgin Sunrise", Category: models.CategoryMocktails, Price: 350, Description: "A bright, layered drink of orange juice and a splash of grenadine.", Image: "images/drinks/mocktails/Virgin Sunrise.jfif"},
	{ID: 152, Name: "Virgin Nojito", Category: models.CategoryMocktails, Price: 320, Description: "The classic Mojito flavour with fresh mint, lime, and soda water, minus the rum.", Image: "images/drinks/mocktails/VirginNojito.jfif"},
	{ID: 153, Name: "Strawberry Cooler", Category: models.CategoryMocktails, Price: 380, Description: "A sweet and refreshing blend of crushed fresh strawberries and a hint of lime.", Image: "images/drinks/mocktails/Strawberry Cooler.jfif"},
	{ID: 154, Name: "Tropical Breeze", Category: models.CategoryMocktails, Price: 360, Description: "A vibrant, fruity punch combining pineapple, orange, and a touch of sweetness.", Image: "images/drinks/mocktails/Tropical Breeze.jfif"},
	{ID: 155, Name: "Berry Blast", Category: models.CategoryMocktails, Price: 370, Description: "A refreshing muddle of assorted seasonal berries topped with sparkling soda.", Image: "images/drinks/mocktails/Berry Blast.jfif"},
	{ID: 156, Name: "Mango Tango", Category: models.CategoryMocktails, Price: 350, Description: "A rich, smooth fusion of sweet mango and tangy passion fruit juice.", Image: "images/drinks/mocktails/Mango Tango.jfif"},
	{ID: 157, Name: "Pineapple Paradise", Category: models.CategoryMocktails, Price: 340, Description: "Pure pineapple juice blended with creamy coconut milk and a hint of spice.", Image: "images/drinks/mocktails/Pineapple Paradise.jfif"},
	{ID: 158, Name: "Citrus Splash", Category: models.CategoryMocktails, Price: 330, Description: "An invigorating blend of lemon, lime, and orange juices served over ice.", Image: "images/drinks/mocktails/Citrus Splash.jfif"},
	{ID: 159, Name: "Cucumber Mint Refresher", Category: models.CategoryMocktails, Price: 320, Description: "A super-cooling, detoxifying drink with fresh cucumber, mint, and soda.", Image: "images/drinks/mocktails/Cucumber Mint Refresher.jfif"},
	{ID: 160, Name: "Ginger Zinger", Category: models.CategoryMocktails, Price: 340, Description: "A bold, tangy mix of ginger, pineapple, and citrus juices.", Image: "images/drinks/mocktails/Ginger Zinger.jfif"},
}
